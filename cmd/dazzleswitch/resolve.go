package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/DazzleNodes/ComfyUI-DazzleSwitch/switchnode"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve one switch selection",
	Long: "Run a single resolution: given a dropdown choice, an override, a fallback mode, " +
		"and a set of slot values, print the routed value and its 1-based index.",
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().String("select", switchnode.SelectNoneConnected, "Dropdown choice (slot name or bypass sentinel)")
	resolveCmd.Flags().Int("override", 0, "Numeric override (0 = use dropdown, negative counts from the end)")
	resolveCmd.Flags().String("mode", string(switchnode.ModePriority), "Fallback mode: priority, strict, or sequential")
	resolveCmd.Flags().StringArray("input", nil, "Slot value as name=value (repeatable, e.g. --input input_01=A)")
	resolveCmd.Flags().String("slots", "", "JSON file mapping slot names to values (null = unconnected)")
	resolveCmd.Flags().String("call-id", "", "Correlation ID for diagnostics (default: random UUID)")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	selectChoice, _ := cmd.Flags().GetString("select")
	override, _ := cmd.Flags().GetInt("override")
	mode, _ := cmd.Flags().GetString("mode")
	inputs, _ := cmd.Flags().GetStringArray("input")
	slotsFile, _ := cmd.Flags().GetString("slots")
	callID, _ := cmd.Flags().GetString("call-id")
	verbose := viper.GetBool("verbose")

	if callID == "" {
		callID = uuid.NewString()
	}

	slots := switchnode.NewSlotSet()

	if slotsFile != "" {
		if err := loadSlotsFile(slotsFile, slots); err != nil {
			return err
		}
	}

	for _, kv := range inputs {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --input %q, want name=value", kv)
		}
		if !slots.Put(name, value) && verbose {
			fmt.Fprintf(os.Stderr, "ignoring non-slot input %q\n", name)
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "call %s: %d connected slot(s)\n", callID, slots.Len())
		for _, s := range slots.Arrival() {
			fmt.Fprintf(os.Stderr, "  %s = %v\n", s.Name(), s.Value)
		}
	}

	selector := switchnode.New(switchnode.WithLogger(newLogger()))
	result := selector.Resolve(switchnode.Directive{
		Select:   selectChoice,
		Override: override,
		Mode:     switchnode.FallbackMode(mode),
		CallID:   callID,
	}, slots)

	if !result.Routed() {
		fmt.Println("selected_index: 0")
		fmt.Println("output: (none)")
		return nil
	}

	fmt.Printf("selected_index: %d\n", result.Index)
	fmt.Printf("output: %v\n", result.Value)
	return nil
}

// loadSlotsFile merges a JSON object of slot name to value into the set.
// Null values mark slots unconnected, matching the host's omission semantics.
func loadSlotsFile(path string, slots *switchnode.SlotSet) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading slots file: %w", err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("parsing slots file: %w", err)
	}

	// JSON objects carry no order; apply in ascending name order so repeated
	// runs resolve identically.
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		slots.Put(name, m[name])
	}
	return nil
}

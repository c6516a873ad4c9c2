package main

import (
	"encoding/json"
	"os"

	"github.com/DazzleNodes/ComfyUI-DazzleSwitch/nodespec"
	"github.com/DazzleNodes/ComfyUI-DazzleSwitch/switchnode"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print node registration metadata",
	Long:  "Print the registration metadata the host reads when loading the DazzleSwitch node class, as JSON.",
	RunE:  runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	registry := nodespec.NewRegistry()
	if err := switchnode.RegisterInto(registry); err != nil {
		return err
	}

	spec, err := registry.Resolve(switchnode.ClassName)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(spec)
}

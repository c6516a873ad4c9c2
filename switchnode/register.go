package switchnode

import (
	"github.com/DazzleNodes/ComfyUI-DazzleSwitch/nodespec"
)

// Registration constants the host reads once when the node class is loaded.
const (
	ClassName   = "DazzleSwitch"
	DisplayName = "Dazzle Switch"
	Category    = "DazzleNodes"

	// DeclaredSlots is the number of input slots pre-declared in the schema.
	// The schema accepts higher-numbered slots dynamically; this is only the
	// initial set the editor lists before any connections exist.
	DeclaredSlots = 3
)

// Spec builds the registration metadata for the DazzleSwitch node class.
func Spec() *nodespec.NodeSpec {
	min, max := nodespec.IntBounds(MinOverride, MaxOverride)

	inputs := nodespec.InputSchema{
		Required: []nodespec.ParamSpec{
			{
				Name:    "select",
				Type:    nodespec.Combo(),
				Default: SelectNoneConnected,
				Options: []string{SelectNoneConnected},
				Tooltip: "Choose which connected input to route to output. " +
					"Options update automatically based on connections.",
			},
			{
				Name:    "mode",
				Type:    nodespec.Combo(),
				Default: string(ModePriority),
				Options: []string{string(ModePriority), string(ModeStrict), string(ModeSequential)},
				Tooltip: "Fallback when the override and dropdown miss: priority = first " +
					"connected input, strict = no substitution, sequential = scan onward " +
					"from the requested input, wrapping around.",
			},
		},
		Optional: []nodespec.ParamSpec{
			{
				Name:    "select_override",
				Type:    nodespec.TypeInt,
				Default: 0,
				Min:     min,
				Max:     max,
				Tooltip: "Programmatic override: 0 = use dropdown, positive values " +
					"select input_01 and up, negative values count back from the " +
					"last connected input. Enables cascading selection from upstream.",
			},
		},
		Hidden: []nodespec.ParamSpec{
			{Name: "unique_id", Type: nodespec.TypeString},
		},
	}

	for i := 1; i <= DeclaredSlots; i++ {
		inputs.Optional = append(inputs.Optional, nodespec.ParamSpec{
			Name: SlotName(i),
			Type: nodespec.AnyType,
		})
	}

	return &nodespec.NodeSpec{
		Name:        ClassName,
		DisplayName: DisplayName,
		Category:    Category,
		OutputNode:  false,
		Inputs:      inputs,
		ReturnTypes: []nodespec.TypeSpec{nodespec.AnyType, nodespec.TypeInt},
		ReturnNames: []string{"output", "selected_index"},
	}
}

// RegisterInto registers the DazzleSwitch class with a host registry.
func RegisterInto(r *nodespec.Registry) error {
	return r.Register(Spec())
}

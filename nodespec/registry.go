package nodespec

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// NodeSpec is the registration-time description of one node class. The host
// reads it once when the class is registered and uses it to render the node,
// validate connections, and label the outputs.
type NodeSpec struct {
	// Name is the class identifier used in serialized graphs.
	Name string

	// DisplayName is the human-readable name shown in the editor.
	DisplayName string

	// Category places the node in the editor's add-node menu.
	Category string

	// OutputNode marks terminal nodes whose results the host collects.
	// Routing utilities are not output nodes.
	OutputNode bool

	// Inputs declares the node's parameters.
	Inputs InputSchema

	// ReturnTypes and ReturnNames describe the output slots, positionally.
	ReturnTypes []TypeSpec
	ReturnNames []string
}

// Validate checks the spec for registration errors.
func (n *NodeSpec) Validate() error {
	var err error
	if n.Name == "" {
		err = multierr.Append(err, fmt.Errorf("node spec has empty name"))
	}
	if len(n.ReturnTypes) != len(n.ReturnNames) {
		err = multierr.Append(err, fmt.Errorf("node %q declares %d return types but %d return names",
			n.Name, len(n.ReturnTypes), len(n.ReturnNames)))
	}
	if serr := n.Inputs.Validate(); serr != nil {
		err = multierr.Append(err, fmt.Errorf("node %q inputs: %w", n.Name, serr))
	}
	return err
}

// Registry maps class names to node specs. The host consults it when loading
// a serialized graph to resolve each node's class.
type Registry struct {
	specs map[string]*NodeSpec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*NodeSpec)}
}

// Register adds a node class, validating the spec first. Registering a name
// twice is an error: class names are global in the host and silent
// replacement hides packaging mistakes.
func (r *Registry) Register(spec *NodeSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if _, exists := r.specs[spec.Name]; exists {
		return fmt.Errorf("node class %q already registered", spec.Name)
	}
	r.specs[spec.Name] = spec
	return nil
}

// Resolve returns the spec for a class name.
func (r *Registry) Resolve(name string) (*NodeSpec, error) {
	spec, ok := r.specs[name]
	if !ok {
		return nil, fmt.Errorf("no node class registered for %q", name)
	}
	return spec, nil
}

// Classes returns all registered class names in sorted order.
func (r *Registry) Classes() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DisplayNames returns the class-name to display-name mapping the host uses
// to label nodes in the editor.
func (r *Registry) DisplayNames() map[string]string {
	out := make(map[string]string, len(r.specs))
	for name, spec := range r.specs {
		out[name] = spec.DisplayName
	}
	return out
}

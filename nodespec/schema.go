package nodespec

import (
	"fmt"

	"go.uber.org/multierr"
)

// ParamSpec declares a single node parameter: its name, type descriptor, and
// the widget hints the host reads at registration time.
type ParamSpec struct {
	// Name is the parameter name as it appears in the call mapping.
	Name string

	// Type is the descriptor the host compares during connection validation.
	Type TypeSpec

	// Default is the initial widget value (optional).
	Default any

	// Min and Max bound numeric widgets (optional, both nil or both set).
	Min *int
	Max *int

	// Options lists the choices of a dropdown widget (combo types only).
	Options []string

	// Tooltip is the hover text shown in the editor (optional).
	Tooltip string
}

// IntBounds returns pointers suitable for ParamSpec.Min/Max.
func IntBounds(min, max int) (*int, *int) {
	return &min, &max
}

// InputSchema declares the inputs of a node class in the three sections the
// host distinguishes: required (always present as widgets or connections),
// optional (connections that may be absent), and hidden (host-supplied
// values such as the call identifier, never rendered).
//
// The schema deliberately answers membership and enumeration differently.
// Accepts reports true for every candidate name, so a slot the editor adds
// dynamically (input_06, input_07, ...) is always considered declared and
// passes the host's pre-call validation. Declared enumerates only the fixed
// pre-registered subset, so host introspection that lists known inputs sees
// the small initial set rather than an unbounded range. Both behaviors are
// part of the contract; callers needing to distinguish "declared with a
// specific type" from "accepted generically" consult Declared first.
type InputSchema struct {
	Required []ParamSpec
	Optional []ParamSpec
	Hidden   []ParamSpec
}

// Accepts reports whether the schema admits a parameter of the given name.
// It is universally true: any name offered by the host is accepted, whether
// or not it was pre-declared.
func (s *InputSchema) Accepts(string) bool {
	return true
}

// Declared returns the pre-registered parameters in declaration order:
// required first, then optional, then hidden.
func (s *InputSchema) Declared() []ParamSpec {
	out := make([]ParamSpec, 0, len(s.Required)+len(s.Optional)+len(s.Hidden))
	out = append(out, s.Required...)
	out = append(out, s.Optional...)
	out = append(out, s.Hidden...)
	return out
}

// Find returns the declared parameter with the given name, if any.
func (s *InputSchema) Find(name string) (ParamSpec, bool) {
	for _, p := range s.Declared() {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// TypeOf returns the type descriptor the host should use when validating a
// connection to the named input: the declared descriptor when the name was
// pre-registered, and the wildcard for everything else.
func (s *InputSchema) TypeOf(name string) TypeSpec {
	if p, ok := s.Find(name); ok {
		return p.Type
	}
	return AnyType
}

// Validate checks the schema for declaration errors. All problems found are
// accumulated and returned as one combined error; a nil return means the
// schema is well-formed.
func (s *InputSchema) Validate() error {
	var err error

	seen := make(map[string]bool)
	for _, p := range s.Declared() {
		if p.Name == "" {
			err = multierr.Append(err, fmt.Errorf("parameter with empty name"))
			continue
		}
		if seen[p.Name] {
			err = multierr.Append(err, fmt.Errorf("duplicate parameter %q", p.Name))
		}
		seen[p.Name] = true

		if p.Type.Name == "COMBO" && len(p.Options) == 0 {
			err = multierr.Append(err, fmt.Errorf("combo parameter %q has no options", p.Name))
		}
		if (p.Min == nil) != (p.Max == nil) {
			err = multierr.Append(err, fmt.Errorf("parameter %q declares only one of min/max", p.Name))
		}
		if p.Min != nil && p.Max != nil {
			if *p.Min > *p.Max {
				err = multierr.Append(err, fmt.Errorf("parameter %q has min %d > max %d", p.Name, *p.Min, *p.Max))
			}
			if d, ok := p.Default.(int); ok && (d < *p.Min || d > *p.Max) {
				err = multierr.Append(err, fmt.Errorf("parameter %q default %d outside [%d, %d]", p.Name, d, *p.Min, *p.Max))
			}
		}
	}

	return err
}

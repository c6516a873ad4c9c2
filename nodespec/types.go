// Package nodespec describes node classes to a graph-editor host: parameter
// schemas, return slots, and the type descriptors the host uses to gate
// connections between nodes.
package nodespec

// TypeSpec identifies a data type as the host sees it. The host compares the
// declared type of an input against the declared type of the upstream output
// before it allows a connection; it never inspects the values themselves.
type TypeSpec struct {
	// Name is the host-visible type name (e.g. "INT", "STRING").
	Name string

	// Wildcard marks the descriptor as compatible with every other type.
	Wildcard bool
}

// AnyType is the wildcard descriptor. A slot declared with AnyType accepts a
// connection from an output of any type, including other wildcards. The
// marker only participates in connection gating; it has no effect on the
// values that later flow through the slot.
var AnyType = TypeSpec{Name: "*", Wildcard: true}

// Common concrete descriptors used by node parameter declarations.
var (
	TypeInt    = TypeSpec{Name: "INT"}
	TypeFloat  = TypeSpec{Name: "FLOAT"}
	TypeString = TypeSpec{Name: "STRING"}
	TypeBool   = TypeSpec{Name: "BOOLEAN"}
)

// Combo builds the descriptor for a dropdown parameter. The host renders
// combo parameters as a widget rather than a connection point, but they still
// carry a type name for introspection.
func Combo() TypeSpec {
	return TypeSpec{Name: "COMBO"}
}

// String returns the host-visible type name.
func (t TypeSpec) String() string { return t.Name }

// Compatible reports whether the host may connect an output of type a to an
// input of type b. A wildcard on either side matches everything, including
// another wildcard; otherwise the names must be identical.
func Compatible(a, b TypeSpec) bool {
	if a.Wildcard || b.Wildcard {
		return true
	}
	return a.Name == b.Name
}

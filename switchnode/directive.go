package switchnode

// Dropdown sentinels. Either value (or an empty string) bypasses the dropdown
// during resolution, deferring entirely to the override and fallback mode.
// The editor shows SelectNoneConnected as the dropdown's initial option and
// SelectNone when connections exist but none is chosen.
const (
	SelectNone          = "(none)"
	SelectNoneConnected = "(none connected)"
)

// Override bounds. The editor widget clamps to these; values outside the
// range arriving through other paths degrade to 0 (no override).
const (
	MinOverride = -50
	MaxOverride = 50
)

// Directive is the selection input for one resolution call: the dropdown
// choice, the numeric override, and the fallback policy. It has no identity
// beyond the call.
type Directive struct {
	// Select is the dropdown choice: a slot name, or a bypass sentinel.
	Select string

	// Override is the numeric selector. 0 means no override. Positive values
	// target the slot at that position directly. Negative values count back
	// from the highest connected position (-1 = last connected).
	Override int

	// Mode is the fallback policy applied when override and dropdown miss.
	// Unrecognized values behave as ModePriority.
	Mode FallbackMode

	// CallID is an opaque identifier used only to correlate diagnostics.
	CallID string
}

// dropdownBypassed reports whether the dropdown choice is absent or one of
// the bypass sentinels.
func (d Directive) dropdownBypassed() bool {
	switch d.Select {
	case "", SelectNone, SelectNoneConnected:
		return true
	}
	return false
}

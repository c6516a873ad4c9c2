package switchnode

// FallbackMode selects the policy applied when neither the override nor the
// dropdown resolves to a connected input.
type FallbackMode string

const (
	// ModePriority falls back to the lowest-position connected input.
	ModePriority FallbackMode = "priority"

	// ModeStrict never substitutes: a miss resolves to nothing.
	ModeStrict FallbackMode = "strict"

	// ModeSequential scans the slot range circularly, starting one past the
	// requested position, and takes the first connected input found.
	ModeSequential FallbackMode = "sequential"
)

// ParseMode maps a mode string to its FallbackMode. The second return is
// false for unrecognized strings; callers treat those as ModePriority.
func ParseMode(s string) (FallbackMode, bool) {
	switch FallbackMode(s) {
	case ModePriority, ModeStrict, ModeSequential:
		return FallbackMode(s), true
	}
	return ModePriority, false
}

// Known reports whether the mode is one of the three recognized policies.
func (m FallbackMode) Known() bool {
	_, ok := ParseMode(string(m))
	return ok
}

// String returns the mode's wire representation.
func (m FallbackMode) String() string { return string(m) }

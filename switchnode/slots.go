package switchnode

import (
	"fmt"
	"sort"
)

// SlotPrefix is the fixed name prefix of every input slot.
const SlotPrefix = "input_"

// SlotName formats the host-visible name of the slot at a 1-based position:
// input_01, input_02, ..., input_100. The numeric suffix is zero-padded to a
// minimum of two digits.
func SlotName(pos int) string {
	return fmt.Sprintf("%s%02d", SlotPrefix, pos)
}

// ParseSlotName extracts the 1-based position from a slot name. Names that
// do not match the fixed prefix plus a two-or-more digit suffix, or that
// encode position zero, are not slots; the second return is false for those.
func ParseSlotName(name string) (int, bool) {
	if len(name) < len(SlotPrefix)+2 || name[:len(SlotPrefix)] != SlotPrefix {
		return 0, false
	}
	pos := 0
	for _, c := range name[len(SlotPrefix):] {
		if c < '0' || c > '9' {
			return 0, false
		}
		pos = pos*10 + int(c-'0')
	}
	if pos == 0 {
		return 0, false
	}
	return pos, true
}

// Slot is one connected input: its 1-based position and the value supplied
// for it. Name is the canonical formatted name for the position.
type Slot struct {
	Index int
	Value any
}

// Name returns the canonical slot name for the slot's position.
func (s Slot) Name() string { return SlotName(s.Index) }

// SlotSet is the sparse collection of inputs supplied for one resolution
// call. It is built fresh per call and never reused: the node holds no state
// between invocations.
//
// A nil value is identical to never supplying the slot at all. The host
// omits unconnected slots from the call entirely, but callers that pass an
// explicit nil for the same slot get identical resolution.
type SlotSet struct {
	values map[int]any
	order  []int // positions in the order they were first supplied
}

// NewSlotSet creates an empty slot collection.
func NewSlotSet() *SlotSet {
	return &SlotSet{values: make(map[int]any)}
}

// FromMap builds a SlotSet from a name-to-value mapping, such as the raw
// call arguments the host passes. Non-slot names and nil values are ignored.
// Arrival order is ascending position, since map iteration carries no order.
func FromMap(m map[string]any) *SlotSet {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	s := NewSlotSet()
	for _, name := range names {
		s.Put(name, m[name])
	}
	return s
}

// Put records a value for a named slot. Returns false when the name is not
// a well-formed slot name; such entries are silently ignored as non-slots.
// A nil value marks the slot unconnected, removing any earlier value.
func (s *SlotSet) Put(name string, value any) bool {
	pos, ok := ParseSlotName(name)
	if !ok {
		return false
	}
	s.PutIndex(pos, value)
	return true
}

// PutIndex records a value for the slot at a 1-based position. A nil value
// marks the slot unconnected.
func (s *SlotSet) PutIndex(pos int, value any) {
	if pos < 1 {
		return
	}
	if value == nil {
		delete(s.values, pos)
		return
	}
	if _, exists := s.values[pos]; !exists {
		s.order = append(s.order, pos)
	}
	s.values[pos] = value
}

// Value returns the value connected at a position.
func (s *SlotSet) Value(pos int) (any, bool) {
	v, ok := s.values[pos]
	return v, ok
}

// Len returns the number of connected slots.
func (s *SlotSet) Len() int { return len(s.values) }

// Connected returns the connected slots in ascending position order. This is
// the ordering used for positional tie-breaks (priority fallback, negative
// override counting).
func (s *SlotSet) Connected() []Slot {
	out := make([]Slot, 0, len(s.values))
	for pos, v := range s.values {
		out = append(out, Slot{Index: pos, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Arrival returns the connected slots in the order they were supplied to the
// call. Distinct from Connected: the two coincide when the host supplies
// slots in ascending order, but a caller-driven order is preserved here for
// introspection and diagnostics.
func (s *SlotSet) Arrival() []Slot {
	out := make([]Slot, 0, len(s.values))
	for _, pos := range s.order {
		if v, ok := s.values[pos]; ok {
			out = append(out, Slot{Index: pos, Value: v})
		}
	}
	return out
}

// MaxIndex returns the highest connected position, or 0 when empty.
func (s *SlotSet) MaxIndex() int {
	max := 0
	for pos := range s.values {
		if pos > max {
			max = pos
		}
	}
	return max
}

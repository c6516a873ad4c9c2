// Package switchnode implements the DazzleSwitch routing node: a deterministic
// selector that routes one of several optional inputs to a single output,
// driven by a dropdown choice, a signed numeric override, and a fallback
// policy for misses.
package switchnode

import (
	"github.com/rs/zerolog"
)

// Result is the outcome of one resolution: the routed value and the 1-based
// position it came from. Index 0 with a nil Value means nothing could be
// resolved; that is a normal return, not an error.
type Result struct {
	Value any
	Index int
}

// Routed reports whether the resolution selected an input.
func (r Result) Routed() bool { return r.Index > 0 }

// Selector resolves directives against slot collections. It holds no
// per-call state and is safe for concurrent use.
type Selector struct {
	log zerolog.Logger
}

// Option configures a Selector.
type Option func(*Selector)

// WithLogger sets the diagnostic logger. Selectors log nothing by default.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Selector) {
		s.log = log
	}
}

// New creates a Selector.
func New(opts ...Option) *Selector {
	s := &Selector{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSelector = New()

// Resolve runs a resolution with a silent default Selector.
func Resolve(d Directive, slots *SlotSet) Result {
	return defaultSelector.Resolve(d, slots)
}

// Resolve picks exactly one connected input (or none) for the directive.
//
// Resolution order:
//  1. Nothing connected: Result{nil, 0}, regardless of directive.
//  2. Negative override in range: Nth-from-the-end connected slot. A miss
//     behaves as override 0 for every later step.
//  3. Positive override targeting a connected slot.
//  4. Dropdown choice naming a connected slot (unless bypassed).
//  5. Fallback mode: strict returns nothing, priority returns the lowest
//     connected position, sequential scans circularly from one past the
//     requested position (the override target if positive, else the dropdown
//     choice) and takes the first connected slot.
//
// The returned Value is the exact value supplied for the slot; composite
// values pass through without copying.
func (s *Selector) Resolve(d Directive, slots *SlotSet) Result {
	log := s.log.With().Str("call_id", d.CallID).Logger()

	connected := slots.Connected()
	if len(connected) == 0 {
		log.Debug().Msg("no inputs connected, returning nothing")
		return Result{}
	}

	mode := d.Mode
	if mode == "" {
		mode = ModePriority
	} else if !mode.Known() {
		log.Warn().Str("mode", string(d.Mode)).Msg("unrecognized fallback mode, using priority")
		mode = ModePriority
	}

	override := d.Override
	if override < MinOverride || override > MaxOverride {
		log.Warn().Int("override", override).Msg("override out of bounds, ignoring")
		override = 0
	}

	// Negative override: count back through connected slots. In range it is
	// the highest-priority path; out of range it is fully equivalent to no
	// override for the rest of resolution.
	if override < 0 {
		n := -override
		if n <= len(connected) {
			slot := connected[len(connected)-n]
			log.Debug().Int("override", override).Int("index", slot.Index).Msg("negative override selected")
			return Result{Value: slot.Value, Index: slot.Index}
		}
		log.Debug().Int("override", override).Int("connected", len(connected)).Msg("negative override out of range")
		override = 0
	}

	// Positive override: direct slot target.
	if override > 0 {
		if v, ok := slots.Value(override); ok {
			log.Debug().Int("index", override).Msg("override selected")
			return Result{Value: v, Index: override}
		}
		log.Debug().Int("override", override).Msg("override target not connected, falling back")
	}

	// Dropdown choice.
	if !d.dropdownBypassed() {
		if pos, ok := ParseSlotName(d.Select); ok {
			if v, hit := slots.Value(pos); hit {
				log.Debug().Str("select", d.Select).Int("index", pos).Msg("dropdown selected")
				return Result{Value: v, Index: pos}
			}
		}
		log.Debug().Str("select", d.Select).Msg("dropdown target not connected, falling back")
	}

	// Requested position for sequential scanning: the positive-override
	// target wins, then the dropdown choice. Missed negative overrides never
	// contribute one.
	requested := 0
	if override > 0 {
		requested = override
	} else if !d.dropdownBypassed() {
		if pos, ok := ParseSlotName(d.Select); ok {
			requested = pos
		}
	}

	switch mode {
	case ModeStrict:
		log.Debug().Msg("strict mode, no substitution")
		return Result{}

	case ModeSequential:
		return s.sequential(log, slots, connected, requested)

	default:
		first := connected[0]
		log.Debug().Int("index", first.Index).Msg("priority fallback selected first connected")
		return Result{Value: first.Value, Index: first.Index}
	}
}

// sequential scans the reconstructed slot range circularly. The range runs
// from position 1 through the higher of the highest connected position and
// the requested position, covering gaps for slots that exist on the graph
// but were omitted from the call. Each position is visited at most once.
func (s *Selector) sequential(log zerolog.Logger, slots *SlotSet, connected []Slot, requested int) Result {
	rangeMax := connected[len(connected)-1].Index
	if requested > rangeMax {
		rangeMax = requested
	}

	start := 1
	if requested >= 1 {
		start = requested%rangeMax + 1
	}

	for i := 0; i < rangeMax; i++ {
		pos := (start-1+i)%rangeMax + 1
		if v, ok := slots.Value(pos); ok {
			log.Debug().Int("index", pos).Int("requested", requested).Msg("sequential fallback selected")
			return Result{Value: v, Index: pos}
		}
	}

	log.Debug().Int("requested", requested).Msg("sequential scan found nothing connected")
	return Result{}
}

package switchnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected FallbackMode
		known    bool
	}{
		{"priority", ModePriority, true},
		{"strict", ModeStrict, true},
		{"sequential", ModeSequential, true},
		{"", ModePriority, false},
		{"Priority", ModePriority, false}, // case-sensitive
		{"round_robin", ModePriority, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, known := ParseMode(tt.input)
			assert.Equal(t, tt.expected, mode)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestFallbackModeKnown(t *testing.T) {
	assert.True(t, ModePriority.Known())
	assert.True(t, ModeStrict.Known())
	assert.True(t, ModeSequential.Known())
	assert.False(t, FallbackMode("bogus").Known())
	assert.False(t, FallbackMode("").Known())
}

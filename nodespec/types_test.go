package nodespec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompatible(t *testing.T) {
	tests := []struct {
		name     string
		a, b     TypeSpec
		expected bool
	}{
		{"wildcard accepts concrete", AnyType, TypeInt, true},
		{"concrete accepts wildcard", TypeString, AnyType, true},
		{"wildcard accepts wildcard", AnyType, AnyType, true},
		{"same concrete types", TypeInt, TypeInt, true},
		{"different concrete types", TypeInt, TypeString, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compatible(tt.a, tt.b))
		})
	}
}

func TestCompatible_Symmetric(t *testing.T) {
	pairs := [][2]TypeSpec{
		{AnyType, TypeInt},
		{TypeInt, TypeString},
		{AnyType, AnyType},
		{TypeFloat, TypeFloat},
	}

	for _, p := range pairs {
		assert.Equal(t, Compatible(p[0], p[1]), Compatible(p[1], p[0]))
	}
}

func TestTypeSpecString(t *testing.T) {
	assert.Equal(t, "*", AnyType.String())
	assert.Equal(t, "INT", TypeInt.String())
	assert.Equal(t, "COMBO", Combo().String())
}

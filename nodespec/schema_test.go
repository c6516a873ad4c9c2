package nodespec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func testSchema() *InputSchema {
	return &InputSchema{
		Required: []ParamSpec{
			{Name: "select", Type: Combo(), Options: []string{"(none connected)"}},
		},
		Optional: []ParamSpec{
			{Name: "input_01", Type: AnyType},
			{Name: "input_02", Type: AnyType},
			{Name: "input_03", Type: AnyType},
		},
		Hidden: []ParamSpec{
			{Name: "unique_id", Type: TypeString},
		},
	}
}

func TestInputSchema_AcceptsEverything(t *testing.T) {
	s := testSchema()

	// Universal containment: declared or not, every candidate is accepted.
	assert.True(t, s.Accepts("input_01"))
	assert.True(t, s.Accepts("input_47"))
	assert.True(t, s.Accepts("anything_at_all"))
	assert.True(t, s.Accepts(""))
}

func TestInputSchema_DeclaredIsPartial(t *testing.T) {
	s := testSchema()

	declared := s.Declared()
	require.Len(t, declared, 5)

	// Declaration order: required, optional, hidden.
	assert.Equal(t, "select", declared[0].Name)
	assert.Equal(t, "input_01", declared[1].Name)
	assert.Equal(t, "unique_id", declared[4].Name)

	names := make([]string, len(declared))
	for i, p := range declared {
		names[i] = p.Name
	}
	assert.NotContains(t, names, "input_47")
}

func TestInputSchema_TypeOf(t *testing.T) {
	s := testSchema()

	assert.Equal(t, TypeString, s.TypeOf("unique_id"))
	assert.Equal(t, AnyType, s.TypeOf("input_01"))

	// Undeclared names get the generic accepts-anything descriptor.
	assert.Equal(t, AnyType, s.TypeOf("input_47"))
	assert.Equal(t, AnyType, s.TypeOf("mystery"))
}

func TestInputSchema_ValidateOK(t *testing.T) {
	assert.NoError(t, testSchema().Validate())
}

func TestInputSchema_ValidateAccumulatesErrors(t *testing.T) {
	min := 10
	max := 1
	s := &InputSchema{
		Required: []ParamSpec{
			{Name: "", Type: TypeInt},
			{Name: "combo", Type: Combo()},
			{Name: "bounded", Type: TypeInt, Min: &min, Max: &max},
			{Name: "combo", Type: Combo(), Options: []string{"x"}},
		},
	}

	err := s.Validate()
	require.Error(t, err)

	// Every problem is reported, not just the first.
	errs := multierr.Errors(err)
	assert.Len(t, errs, 4)
}

func TestInputSchema_ValidateDefaultOutsideBounds(t *testing.T) {
	min, max := IntBounds(0, 10)
	s := &InputSchema{
		Optional: []ParamSpec{
			{Name: "n", Type: TypeInt, Default: 50, Min: min, Max: max},
		},
	}

	assert.Error(t, s.Validate())
}

func TestInputSchema_ValidateHalfBounds(t *testing.T) {
	min := 0
	s := &InputSchema{
		Optional: []ParamSpec{
			{Name: "n", Type: TypeInt, Min: &min},
		},
	}

	assert.Error(t, s.Validate())
}

package nodespec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec(name string) *NodeSpec {
	return &NodeSpec{
		Name:        name,
		DisplayName: name + " Node",
		Category:    "Test",
		Inputs:      *testSchema(),
		ReturnTypes: []TypeSpec{AnyType},
		ReturnNames: []string{"output"},
	}
}

func TestRegistry_RegisterAndResolve(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(testSpec("Switch")))

	spec, err := r.Resolve("Switch")
	require.NoError(t, err)
	assert.Equal(t, "Switch Node", spec.DisplayName)
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("Missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Missing")
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(testSpec("Switch")))
	assert.Error(t, r.Register(testSpec("Switch")))
}

func TestRegistry_RejectsInvalidSpec(t *testing.T) {
	r := NewRegistry()

	spec := testSpec("Broken")
	spec.ReturnNames = nil // mismatched with ReturnTypes

	assert.Error(t, r.Register(spec))
}

func TestRegistry_Classes(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testSpec("Zeta")))
	require.NoError(t, r.Register(testSpec("Alpha")))

	assert.Equal(t, []string{"Alpha", "Zeta"}, r.Classes())
}

func TestRegistry_DisplayNames(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testSpec("Switch")))

	names := r.DisplayNames()
	assert.Equal(t, map[string]string{"Switch": "Switch Node"}, names)
}

func TestNodeSpec_ValidateEmptyName(t *testing.T) {
	spec := testSpec("")
	assert.Error(t, spec.Validate())
}

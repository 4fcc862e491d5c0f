package portfolio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Define(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Define(ThemeDefinition(ThemeDark)))
	// Redefining is allowed.
	require.NoError(t, r.Define(ThemeDefinition(ThemeLight)))

	def, ok := r.Lookup(ThemeKey)
	require.True(t, ok)
	assert.Equal(t, "light", def.DefaultValue)

	assert.True(t, errors.Is(r.Define(Definition{Type: StringType}), ErrInvalidKey))
	assert.True(t, errors.Is(r.Define(Definition{Key: "x", Type: "list"}), ErrInvalidValue))
	assert.True(t, errors.Is(r.Define(Definition{Key: "x", Type: BooleanType, DefaultValue: "yes"}), ErrInvalidValue),
		"default value must satisfy its own definition")
}

func TestRegistry_KeysAndValidate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Define(ThemeDefinition(ThemeDark)))
	require.NoError(t, r.Define(Definition{Key: "animations", Type: BooleanType, DefaultValue: true}))

	assert.Equal(t, []string{"animations", ThemeKey}, r.Keys())

	assert.NoError(t, r.Validate(ThemeKey, "light"))
	assert.True(t, errors.Is(r.Validate(ThemeKey, "blue"), ErrInvalidValue))
	assert.True(t, errors.Is(r.Validate("unknown", "x"), ErrNotDefined))

	_, ok := r.Lookup("unknown")
	assert.False(t, ok)
}

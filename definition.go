package portfolio

import (
	"sort"
	"sync"
)

// Value types accepted by a Definition.
const (
	StringType  = "string"
	BooleanType = "boolean"
	NumberType  = "number"
	JSONType    = "json"
	EnumType    = "enum"
)

// Definition describes a preference key that clients may write through the API.
type Definition struct {
	Key           string        `json:"key"`
	Type          string        `json:"type"`
	DefaultValue  interface{}   `json:"default_value,omitempty"`
	AllowedValues []interface{} `json:"allowed_values,omitempty"`
	// ValidateFunc runs after the type and allowed-value checks.
	ValidateFunc func(value interface{}) error `json:"-"`
}

// ThemeDefinition returns the definition of the theme preference with the given default.
func ThemeDefinition(defaultTheme Theme) Definition {
	return Definition{
		Key:           ThemeKey,
		Type:          EnumType,
		DefaultValue:  string(defaultTheme),
		AllowedValues: []interface{}{string(ThemeDark), string(ThemeLight)},
	}
}

// Registry holds the known preference definitions.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Define registers def, replacing any previous definition with the same key.
func (r *Registry) Define(def Definition) error {
	if def.Key == "" {
		return ErrInvalidKey
	}
	if !isValidType(def.Type) {
		return ErrInvalidValue
	}
	if def.DefaultValue != nil {
		if err := validateValue(def.DefaultValue, def); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[def.Key] = def
	return nil
}

// Lookup returns the definition for key.
func (r *Registry) Lookup(key string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[key]
	return def, ok
}

// Keys returns the defined keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.defs))
	for k := range r.defs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks value against the definition registered for key.
func (r *Registry) Validate(key string, value interface{}) error {
	def, ok := r.Lookup(key)
	if !ok {
		return ErrNotDefined
	}
	return validateValue(value, def)
}

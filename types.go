package portfolio

import (
	"fmt"
	"time"
)

// Record is one serialized preference as held by a Storage backend.
type Record struct {
	// BrowserID identifies the browser the value belongs to. It plays the role
	// of the origin partition of a browser's local storage.
	BrowserID string `json:"browser_id"`
	// Key is the storage key, for example "portfolio-theme".
	Key string `json:"key"`
	// Value is the JSON text of the preference value.
	Value string `json:"value"`
	// UpdatedAt is set by the storage backend on write.
	UpdatedAt time.Time `json:"updated_at"`
}

// Theme is the color scheme of the page.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ThemeKey is the durable storage key of the theme preference.
const ThemeKey = "portfolio-theme"

// Toggle returns the opposite theme. Anything that is not dark toggles to dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// ParseTheme converts s into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("%w: unknown theme %q", ErrInvalidValue, s)
	}
}

// Validate reports an error for anything other than dark or light.
func (t Theme) Validate() error {
	_, err := ParseTheme(string(t))
	return err
}

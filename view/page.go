package view

import (
	"time"

	"github.com/aishwary11/portfolio"
)

// ToggleAction is the form target of the theme toggle button.
const ToggleAction = "/theme/toggle"

// Page is everything the templates read. The theme and the toggle target are
// passed in explicitly; nothing is looked up from ambient state.
type Page struct {
	Theme        portfolio.Theme
	Experience   string
	Year         int
	Profile      Profile
	Skills       []Skill
	Meta         Metadata
	ToggleAction string
}

// Prerendered returns the page as first painted, before any stored
// preference or clock is read.
func Prerendered(theme portfolio.Theme) Page {
	return Page{
		Theme:        theme,
		Experience:   PlaceholderExperience,
		Year:         PlaceholderYear,
		Profile:      DefaultProfile,
		Skills:       Skills,
		Meta:         DefaultMetadata,
		ToggleAction: ToggleAction,
	}
}

// Live returns the page for a mounted view at time now.
func Live(theme portfolio.Theme, now time.Time) Page {
	p := Prerendered(theme)
	p.Experience = Experience(StartDate, now)
	p.Year = now.Year()
	return p
}

// IsDark reports whether the dark variant is rendered.
func (p Page) IsDark() bool {
	return p.Theme.IsDark()
}

// ToggleLabel is the accessible label of the toggle button.
func (p Page) ToggleLabel() string {
	if p.IsDark() {
		return "Switch to light mode"
	}
	return "Switch to dark mode"
}

// ThemeClass is the root class selecting the color variant.
func (p Page) ThemeClass() string {
	if p.IsDark() {
		return "theme-dark"
	}
	return "theme-light"
}

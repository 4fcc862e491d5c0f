package view

import (
	"fmt"
	"time"
)

// StartDate is the first month of professional experience.
var StartDate = time.Date(2018, time.July, 1, 0, 0, 0, 0, time.Local)

// Placeholders used by the pre-rendered page, before the clock is consulted.
const (
	PlaceholderExperience = "7 years and 5 months"
	PlaceholderYear       = 2025
)

// Experience formats the whole years and months between start and now. A
// month is borrowed while now has not reached start's day of the month.
// Only counts above one are pluralized, so zero reads "0 year" and "0 month".
func Experience(start, now time.Time) string {
	years := now.Year() - start.Year()
	months := int(now.Month()) - int(start.Month())
	if now.Day() < start.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}
	return fmt.Sprintf("%d year%s and %d month%s", years, plural(years), months, plural(months))
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

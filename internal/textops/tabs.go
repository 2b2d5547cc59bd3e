// internal/textops/tabs.go
package textops

import "strings"

// Default tab settings used when the config layer provides nothing better.
const (
	DefaultTabWidth = 4
)

// Tabs is the tab configuration for an editing session. Width is the number
// of columns per tab stop; UseSpaces selects space-rendered indentation.
// The configuration is global to the session, never per-line.
type Tabs struct {
	Width     int
	UseSpaces bool
}

// DefaultTabs returns the stock configuration: 4-column soft tabs.
func DefaultTabs() Tabs {
	return Tabs{Width: DefaultTabWidth, UseSpaces: true}
}

// Valid reports whether the configuration is usable.
func (t Tabs) Valid() bool {
	return t.Width > 0
}

// lead renders the leading whitespace for the given number of tab stops.
// Counts at or below zero render as an empty run.
func (t Tabs) lead(stops int) string {
	if stops <= 0 {
		return ""
	}
	if t.UseSpaces {
		return strings.Repeat(" ", stops*t.Width)
	}
	return strings.Repeat("\t", stops)
}

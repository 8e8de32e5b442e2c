package inspect

import "github.com/fatih/color"

// Styles holds color formatters for the group report.
type Styles struct {
	heading *color.Color
	span    *color.Color
	label   *color.Color
	value   *color.Color
	missing *color.Color
}

// NewStyles creates color formatters for report output.
// enabled=false yields plain text regardless of the terminal.
func NewStyles(enabled bool) *Styles {
	s := &Styles{
		heading: color.New(color.Bold, color.FgHiWhite),
		span:    color.New(color.FgHiGreen),
		label:   color.New(color.Bold),
		value:   color.New(color.FgYellow),
		missing: color.New(color.FgHiBlack),
	}

	for _, c := range []*color.Color{s.heading, s.span, s.label, s.value, s.missing} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

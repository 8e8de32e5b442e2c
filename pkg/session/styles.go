package session

import "github.com/fatih/color"

// styles holds color formatters for loop output
type styles struct {
	banner  *color.Color
	count   *color.Color
	pattern *color.Color
	err     *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		banner:  color.New(color.FgHiCyan),
		count:   color.New(color.FgHiYellow),
		pattern: color.New(color.FgHiCyan),
		err:     color.New(color.FgHiRed),
	}

	for _, c := range []*color.Color{s.banner, s.count, s.pattern, s.err} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

package highlight

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Markers wraps a matched span. The highlighter treats it as opaque.
type Markers interface {
	Open() string
	Close() string
}

// ColorTag selects one of the fixed highlight colors.
type ColorTag int

// Highlight colors. Red is the default.
const (
	Red ColorTag = iota
	Green
	Yellow
	Blue
	Magenta
	Cyan
)

// DefaultColor is used when no color is configured.
const DefaultColor = Red

var colorNames = [...]string{
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
}

var colorAttributes = [...]color.Attribute{
	Red:     color.FgHiRed,
	Green:   color.FgHiGreen,
	Yellow:  color.FgHiYellow,
	Blue:    color.FgHiBlue,
	Magenta: color.FgHiMagenta,
	Cyan:    color.FgHiCyan,
}

// Colors returns every color in declaration order.
func Colors() []ColorTag {
	return []ColorTag{Red, Green, Yellow, Blue, Magenta, Cyan}
}

// ColorNames returns the names accepted by ParseColor.
func ColorNames() []string {
	return colorNames[:]
}

// ParseColor resolves a color name.
func ParseColor(name string) (ColorTag, error) {
	for i, n := range colorNames {
		if strings.EqualFold(n, name) {
			return ColorTag(i), nil
		}
	}
	return DefaultColor, fmt.Errorf("invalid color %q (valid: %s)", name, strings.Join(ColorNames(), ", "))
}

func (c ColorTag) valid() bool {
	return c >= Red && c <= Cyan
}

func (c ColorTag) String() string {
	if !c.valid() {
		return fmt.Sprintf("ColorTag(%d)", int(c))
	}
	return colorNames[c]
}

// Attribute returns the bright foreground attribute for c.
func (c ColorTag) Attribute() color.Attribute {
	if !c.valid() {
		c = DefaultColor
	}
	return colorAttributes[c]
}

// Open returns the SGR sequence that starts the color.
func (c ColorTag) Open() string {
	return fmt.Sprintf("\x1b[%dm", c.Attribute())
}

// Close returns the SGR reset sequence.
func (c ColorTag) Close() string {
	return fmt.Sprintf("\x1b[%dm", color.Reset)
}

// Brackets marks matches with plain text, for output without color.
var Brackets Markers = bracketMarkers{}

type bracketMarkers struct{}

func (bracketMarkers) Open() string  { return "[" }
func (bracketMarkers) Close() string { return "]" }

// Resolve returns the markers for c, or Brackets when color is disabled.
func Resolve(c ColorTag, colorEnabled bool) Markers {
	if !colorEnabled {
		return Brackets
	}
	return c
}

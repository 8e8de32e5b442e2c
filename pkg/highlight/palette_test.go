package highlight

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want ColorTag
	}{
		{"red", Red},
		{"green", Green},
		{"yellow", Yellow},
		{"blue", Blue},
		{"magenta", Magenta},
		{"cyan", Cyan},
		{"CYAN", Cyan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	got, err := ParseColor("purple")

	require.Error(t, err)
	assert.Equal(t, DefaultColor, got)
	assert.Contains(t, err.Error(), "red, green, yellow, blue, magenta, cyan")
}

func TestColorTag_Markers(t *testing.T) {
	assert.Equal(t, "\x1b[91m", Red.Open())
	assert.Equal(t, "\x1b[96m", Cyan.Open())
	assert.Equal(t, "\x1b[0m", Blue.Close())
	assert.Equal(t, color.FgHiGreen, Green.Attribute())
}

func TestColorTag_String(t *testing.T) {
	assert.Equal(t, "magenta", Magenta.String())
	assert.Equal(t, "ColorTag(42)", ColorTag(42).String())
	assert.Equal(t, color.FgHiRed, ColorTag(42).Attribute())
}

func TestColors(t *testing.T) {
	colors := Colors()
	names := ColorNames()

	require.Len(t, colors, 6)
	require.Len(t, names, 6)
	for i, c := range colors {
		assert.Equal(t, names[i], c.String())
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, Markers(Yellow), Resolve(Yellow, true))
	assert.Equal(t, Brackets, Resolve(Yellow, false))
	assert.Equal(t, "[", Brackets.Open())
	assert.Equal(t, "]", Brackets.Close())
}

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/neoncircuit/internal/theme"
)

func TestSectionColorOffsets(t *testing.T) {
	s := theme.Scheme{Sections: []theme.SectionColor{
		{Hue: 0, Hex: "#a"}, {Hue: 1, Hex: "#b"}, {Hue: 2, Hex: "#c"},
		{Hue: 3, Hex: "#d"}, {Hue: 4, Hex: "#e"}, {Hue: 5, Hex: "#f"},
		{Hue: 6, Hex: "#g"}, {Hue: 7, Hex: "#h"},
	}}
	assert.Equal(t, 0, SectionColor(s, 0).Hue)
	assert.Equal(t, 4, SectionColor(s, 4).Hue)
	// The gallery heading is shifted by four.
	assert.Equal(t, 1, SectionColor(s, 5).Hue)
}

func TestStatusLine(t *testing.T) {
	s := theme.Scheme{Theme: theme.Theme{
		Harmony:        theme.Analogous,
		PrimaryHue:     200,
		AccentHue:      230,
		TextContrast:   12.34,
		AccentContrast: 4.56,
	}}
	assert.Equal(t, "> analogous // hue 200 -> 230 // text 12.3:1 // accent 4.6:1", StatusLine(s))
}

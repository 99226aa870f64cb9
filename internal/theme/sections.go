package theme

import (
	"errors"
	"fmt"
	"math"

	"github.com/iburimskiy/neoncircuit/internal/palette"
)

// GoldenRatioConjugate spaces successive section hues.
const GoldenRatioConjugate = 0.618033988749895

// ErrInvalidHex is returned for a background that is not "#rrggbb".
var ErrInvalidHex = errors.New("invalid hex color")

// SectionColor is the heading color of one page section.
type SectionColor struct {
	Hue int    `json:"hue" yaml:"hue"`
	Hex string `json:"hex" yaml:"hex"`
}

// Scheme bundles everything a page needs from one generation.
type Scheme struct {
	Theme    Theme          `json:"theme" yaml:"theme"`
	Sections []SectionColor `json:"sections" yaml:"sections"`
	Border   string         `json:"border" yaml:"border"`
	Circuit  string         `json:"circuit" yaml:"circuit"`
}

// SectionColors returns n colors with golden-ratio spaced hues, each
// lightened until it reaches text contrast against background or the
// repair bound runs out.
func (g *Generator) SectionColors(n int, background string) ([]SectionColor, error) {
	bg, ok := palette.HexToRGB(background)
	if !ok {
		return nil, fmt.Errorf("section background %q: %w", background, ErrInvalidHex)
	}
	if n <= 0 {
		return nil, nil
	}

	colors := make([]SectionColor, 0, n)
	hue := g.rnd.Float64()
	for i := 0; i < n; i++ {
		hue = math.Mod(hue+GoldenRatioConjugate, 1)
		h := int(math.Floor(hue * 360))
		s := float64(70 + intn(g.rnd, 30))
		l := float64(55 + intn(g.rnd, 15))

		c := palette.HSLToRGB(float64(h), s, l)
		iter := 0
		for ; palette.ContrastRatio(c, bg) < palette.MinTextContrast && iter < maxSectionRepairIterations; iter++ {
			c = palette.HSLToRGB(float64(h), s, math.Min(90, l+float64(iter*3)))
		}
		if ratio := palette.ContrastRatio(c, bg); ratio < palette.MinTextContrast {
			g.logger.Warn("section contrast below minimum", "section", i, "hue", h, "ratio", ratio)
		}

		colors = append(colors, SectionColor{Hue: h, Hex: c.Hex()})
	}
	return colors, nil
}

// MutedBorderColor returns one desaturated color shared by every
// bordered element.
func (g *Generator) MutedBorderColor() string {
	h := intn(g.rnd, 360)
	s := 15 + intn(g.rnd, 25)
	l := 25 + intn(g.rnd, 15)
	return palette.HSLToHex(float64(h), float64(s), float64(l))
}

// CircuitColor returns a muted color whose hue sits 60 to 239 degrees
// away from accentHue.
func (g *Generator) CircuitColor(accentHue int) string {
	offset := 60 + intn(g.rnd, 180)
	h := wrapHue(accentHue + offset)
	s := 35 + intn(g.rnd, 25)
	l := 30 + intn(g.rnd, 20)
	return palette.HSLToHex(float64(h), float64(s), float64(l))
}

// Scheme generates a theme and derives the section, border and circuit
// colors from it.
func (g *Generator) Scheme(sections int) Scheme {
	t := g.Theme()
	// The background is produced by Hex, so it always decodes.
	colors, _ := g.SectionColors(sections, t.Background)
	return Scheme{
		Theme:    t,
		Sections: colors,
		Border:   g.MutedBorderColor(),
		Circuit:  g.CircuitColor(t.AccentHue),
	}
}

// SectionFor returns the color for section index i, cycling through
// the generated colors with the given offset.
func (s Scheme) SectionFor(i, offset int) SectionColor {
	if len(s.Sections) == 0 {
		return SectionColor{Hue: s.Theme.AccentHue, Hex: s.Theme.Accent}
	}
	return s.Sections[(i+offset)%len(s.Sections)]
}

// Package palette converts between HSL, RGB and hex color encodings and
// computes WCAG luminance and contrast.
package palette

import (
	"image/color"
	"math"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB color.
type RGB struct {
	R, G, B uint8
}

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// HSLToRGB converts hue (degrees, wrapping), saturation and lightness
// (percent, clamped to 0..100) to RGB, rounding each channel.
func HSLToRGB(h, s, l float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsl(h, clamp01(s/100), clamp01(l/100))
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// HSLToHex is HSLToRGB followed by Hex.
func HSLToHex(h, s, l float64) string {
	return HSLToRGB(h, s, l).Hex()
}

// Hex encodes c as "#rrggbb" with lowercase digits.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// HexToRGB decodes "#rrggbb". ok is false for anything else, including
// a missing '#', short forms and extra digits.
func HexToRGB(hex string) (RGB, bool) {
	if !hexPattern.MatchString(hex) {
		return RGB{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, true
}

// MustHex decodes hex and panics when it is malformed. Use only on
// values produced by Hex.
func MustHex(hex string) RGB {
	c, ok := HexToRGB(hex)
	if !ok {
		panic("palette: malformed hex color " + hex)
	}
	return c
}

// RGBA returns c as an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Blend mixes c toward other by t in [0,1] in RGB space.
func (c RGB) Blend(other RGB, t float64) RGB {
	m := c.colorful().BlendRgb(other.colorful(), clamp01(t))
	r, g, b := m.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// HueOf returns the HSL hue of c rounded down to whole degrees.
func HueOf(c color.Color) int {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0
	}
	h, _, _ := cf.Hsl()
	if math.IsNaN(h) {
		return 0
	}
	return int(math.Floor(h)) % 360
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

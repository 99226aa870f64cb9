package palette

import "math"

// WCAG 2.x thresholds.
const (
	MinTextContrast = 4.5
	MinUIContrast   = 3.0
)

// RelativeLuminance is the WCAG relative luminance of an 8-bit color.
func RelativeLuminance(r, g, b uint8) float64 {
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// Luminance is RelativeLuminance of c.
func (c RGB) Luminance() float64 {
	return RelativeLuminance(c.R, c.G, c.B)
}

// ContrastRatio returns the WCAG contrast ratio between a and b. The
// result is symmetric and never below 1.
func ContrastRatio(a, b RGB) float64 {
	l1, l2 := a.Luminance(), b.Luminance()
	return (math.Max(l1, l2) + 0.05) / (math.Min(l1, l2) + 0.05)
}

// ContrastHex is ContrastRatio on hex encoded colors. ok is false when
// either input does not decode.
func ContrastHex(a, b string) (ratio float64, ok bool) {
	ca, okA := HexToRGB(a)
	cb, okB := HexToRGB(b)
	if !okA || !okB {
		return 0, false
	}
	return ContrastRatio(ca, cb), true
}

func linearize(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

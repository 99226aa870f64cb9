// Package theme generates random dark color themes whose text and accent
// colors meet WCAG contrast minimums against the background.
package theme

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/neoncircuit/internal/palette"
)

// Rand is a source of uniform numbers in [0,1). *rand.Rand from
// math/rand and math/rand/v2 both satisfy it.
type Rand interface {
	Float64() float64
}

// ModeDark is the only mode the generator produces.
const ModeDark = "dark"

const (
	maxRepairIterations        = 50
	maxSectionRepairIterations = 20
)

// Theme is one generated palette. Colors are "#rrggbb".
type Theme struct {
	Background     string  `json:"background" yaml:"background"`
	CardBackground string  `json:"card_background" yaml:"card_background"`
	Text           string  `json:"text" yaml:"text"`
	MutedText      string  `json:"muted_text" yaml:"muted_text"`
	Accent         string  `json:"accent" yaml:"accent"`
	BorderColor    string  `json:"border_color" yaml:"border_color"`
	Mode           string  `json:"mode" yaml:"mode"`
	Harmony        Harmony `json:"harmony" yaml:"harmony"`
	PrimaryHue     int     `json:"primary_hue" yaml:"primary_hue"`
	AccentHue      int     `json:"accent_hue" yaml:"accent_hue"`
	TextContrast   float64 `json:"text_contrast" yaml:"text_contrast"`
	AccentContrast float64 `json:"accent_contrast" yaml:"accent_contrast"`
}

// Generator produces themes from an injected random source. It is not
// safe for concurrent use.
type Generator struct {
	rnd    Rand
	logger *log.Logger

	pinned    bool
	pinnedHue int
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used to report repair loops that gave up.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator returns a Generator drawing from rnd.
func NewGenerator(rnd Rand, opts ...Option) *Generator {
	g := &Generator{
		rnd:    rnd,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PinPrimaryHue makes every following theme use hue as its primary hue.
func (g *Generator) PinPrimaryHue(hue int) {
	g.pinned = true
	g.pinnedHue = wrapHue(hue)
}

// Unpin restores random primary hues.
func (g *Generator) Unpin() {
	g.pinned = false
}

// Theme generates a dark theme and repairs text and accent contrast.
func (g *Generator) Theme() Theme {
	primary := intn(g.rnd, 360)
	if g.pinned {
		primary = g.pinnedHue
	}
	harmony := Harmonies[intn(g.rnd, len(Harmonies))]
	accentHue := AccentHue(primary, harmony, g.rnd)

	ph := float64(primary)

	bgSat := float64(intn(g.rnd, 30))
	bgLight := float64(intn(g.rnd, 8) + 2)
	bg := palette.HSLToRGB(ph, bgSat, bgLight)
	card := palette.HSLToRGB(ph, bgSat, bgLight+3)

	textSat := 0
	if g.rnd.Float64() >= 0.3 {
		textSat = intn(g.rnd, 50) + 30
	}
	textLight := intn(g.rnd, 20) + 80
	textHue := 0.0
	if textSat > 0 {
		textHue = ph
	}
	text := palette.HSLToRGB(textHue, float64(textSat), float64(textLight))

	accentSat := float64(intn(g.rnd, 30) + 70)
	accentLight := float64(intn(g.rnd, 20) + 45)
	accent := palette.HSLToRGB(float64(accentHue), accentSat, accentLight)

	muted := palette.HSLToRGB(ph, math.Floor(float64(textSat)*0.5), math.Floor(float64(textLight)*0.5))
	border := palette.HSLToRGB(ph, 10, 15)

	text = g.repairText(text, bg, ph)
	accent = g.repairAccent(accent, bg, float64(accentHue))

	return Theme{
		Background:     bg.Hex(),
		CardBackground: card.Hex(),
		Text:           text.Hex(),
		MutedText:      muted.Hex(),
		Accent:         accent.Hex(),
		BorderColor:    border.Hex(),
		Mode:           ModeDark,
		Harmony:        harmony,
		PrimaryHue:     primary,
		AccentHue:      accentHue,
		TextContrast:   palette.ContrastRatio(text, bg),
		AccentContrast: palette.ContrastRatio(accent, bg),
	}
}

func (g *Generator) repairText(text, bg palette.RGB, hue float64) palette.RGB {
	dark := bg.Luminance() < 0.5
	i := 0
	for ; palette.ContrastRatio(text, bg) < palette.MinTextContrast && i < maxRepairIterations; i++ {
		if dark {
			text = palette.HSLToRGB(hue, 0, math.Min(100, float64(80+i*2)))
		} else {
			text = palette.HSLToRGB(hue, 0, math.Max(0, float64(20-i*2)))
		}
	}
	if ratio := palette.ContrastRatio(text, bg); ratio < palette.MinTextContrast {
		g.logger.Warn("text contrast below minimum", "ratio", ratio, "iterations", i, "background", bg.Hex())
	} else if i > 0 {
		g.logger.Debug("text contrast repaired", "iterations", i, "text", text.Hex())
	}
	return text
}

func (g *Generator) repairAccent(accent, bg palette.RGB, hue float64) palette.RGB {
	dark := bg.Luminance() < 0.5
	i := 0
	for ; palette.ContrastRatio(accent, bg) < palette.MinUIContrast && i < maxRepairIterations; i++ {
		if dark {
			accent = palette.HSLToRGB(hue, 80, math.Min(80, float64(50+i*3)))
		} else {
			accent = palette.HSLToRGB(hue, 80, math.Max(20, float64(50-i*3)))
		}
	}
	if ratio := palette.ContrastRatio(accent, bg); ratio < palette.MinUIContrast {
		g.logger.Warn("accent contrast below minimum", "ratio", ratio, "iterations", i, "background", bg.Hex())
	} else if i > 0 {
		g.logger.Debug("accent contrast repaired", "iterations", i, "accent", accent.Hex())
	}
	return accent
}

// intn returns floor(rnd*n), the way every range in this package is drawn.
func intn(rnd Rand, n int) int {
	v := int(math.Floor(rnd.Float64() * float64(n)))
	if v >= n {
		v = n - 1
	}
	return v
}

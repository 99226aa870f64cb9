package report

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/neoncircuit/internal/theme"
)

func stripANSI(input string) string {
	ansiPattern := regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
	return ansiPattern.ReplaceAllString(input, "")
}

func TestRenderGeneratedScheme(t *testing.T) {
	g := theme.NewGenerator(rand.New(rand.NewPCG(8, 9)))
	s := g.Scheme(6)

	out := stripANSI(Render(s))

	assert.Contains(t, out, Title)
	assert.Contains(t, out, "Mode: DARK")
	assert.Contains(t, out, "Strategy: "+string(s.Theme.Harmony))
	assert.Contains(t, out, fmt.Sprintf("Primary Hue: %d°", s.Theme.PrimaryHue))
	assert.Contains(t, out, fmt.Sprintf("Accent Hue: %d°", s.Theme.AccentHue))
	assert.Contains(t, out, "Muted Border: "+s.Border)
	assert.Contains(t, out, "Circuit: "+s.Circuit)
	for i, c := range s.Sections {
		assert.Contains(t, out, fmt.Sprintf("[%d] %s (%d°)", i, c.Hex, c.Hue))
	}
	assert.Equal(t, 2, strings.Count(out, "PASS"))
	assert.NotContains(t, out, "FAIL")
}

func TestRenderIsBoxed(t *testing.T) {
	g := theme.NewGenerator(rand.New(rand.NewPCG(1, 2)))
	lines := strings.Split(stripANSI(Render(g.Scheme(3))), "\n")
	require.Greater(t, len(lines), 20)

	assert.True(t, strings.HasPrefix(lines[0], "╔"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "╚"))
	w := lipgloss.Width(lines[0])
	for _, l := range lines {
		assert.Equal(t, w, lipgloss.Width(l), "line %q", l)
	}
}

func TestRenderMarksFailures(t *testing.T) {
	s := theme.Scheme{
		Theme: theme.Theme{
			Background: "#101010",
			Text:       "#202020",
			Accent:     "#303030",
			Mode:       theme.ModeDark,
			Harmony:    theme.Triadic,

			TextContrast:   1.2,
			AccentContrast: 3.0,
		},
		Border:  "#404040",
		Circuit: "#505050",
	}
	out := stripANSI(Render(s))
	assert.Contains(t, out, "Text/BG Contrast: 1.20:1 (WCAG AA requires 4.5:1) FAIL")
	assert.Contains(t, out, "Accent/BG Contrast: 3.00:1 (UI minimum 3.0:1) PASS")
}

func TestPasses(t *testing.T) {
	assert.True(t, Passes(4.5, 4.5))
	assert.False(t, Passes(4.49, 4.5))
}

// Package report renders a generated scheme as a boxed terminal summary.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/neoncircuit/internal/palette"
	"github.com/iburimskiy/neoncircuit/internal/theme"
)

const (
	Title = "NEONCIRCUIT THEME GENERATOR"
	width = 60

	passColor = lipgloss.Color("#00ff00")
	failColor = lipgloss.Color("#ff0000")
)

// Render draws the scheme report in the scheme's own colors.
func Render(s theme.Scheme) string {
	t := s.Theme
	accent := lipgloss.Color(t.Accent)
	bg := lipgloss.Color(t.Background)

	rule := lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("═", width))
	line := func(fg lipgloss.Color, format string, args ...any) string {
		return lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Width(width).
			Render(fmt.Sprintf(format, args...))
	}

	rows := []string{
		lipgloss.NewStyle().Foreground(accent).Bold(true).Width(width).Align(lipgloss.Center).Render(Title),
		rule,
		line(lipgloss.Color(t.Text), " Mode: %s", strings.ToUpper(t.Mode)),
		line(lipgloss.Color(t.Text), " Strategy: %s", t.Harmony),
		line(lipgloss.Color(t.Text), " Primary Hue: %d°", t.PrimaryHue),
		line(lipgloss.Color(t.Text), " Accent Hue: %d°", t.AccentHue),
		rule,
		line(lipgloss.Color(t.Text), " Background: %s", t.Background),
		line(lipgloss.Color(t.Text), " Card: %s", t.CardBackground),
		line(lipgloss.Color(t.Text), " Text: %s", t.Text),
		line(lipgloss.Color(t.MutedText), " Muted Text: %s", t.MutedText),
		line(accent, " Accent: %s", t.Accent),
		line(lipgloss.Color(s.Border), " Muted Border: %s", s.Border),
		line(lipgloss.Color(s.Circuit), " Circuit: %s", s.Circuit),
		rule,
		line(accent, " Section Colors:"),
	}
	for i, c := range s.Sections {
		rows = append(rows, line(lipgloss.Color(c.Hex), "   [%d] %s (%d°)", i, c.Hex, c.Hue))
	}
	rows = append(rows,
		rule,
		contrastLine(" Text/BG Contrast", t.TextContrast, palette.MinTextContrast, "WCAG AA requires"),
		contrastLine(" Accent/BG Contrast", t.AccentContrast, palette.MinUIContrast, "UI minimum"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func contrastLine(label string, ratio, minimum float64, rule string) string {
	mark, fg := "PASS", passColor
	if !Passes(ratio, minimum) {
		mark, fg = "FAIL", failColor
	}
	text := fmt.Sprintf("%s: %.2f:1 (%s %.1f:1) %s", label, ratio, rule, minimum, mark)
	return lipgloss.NewStyle().Foreground(fg).Width(width).Render(text)
}

// Passes reports whether ratio meets minimum.
func Passes(ratio, minimum float64) bool {
	return ratio >= minimum
}

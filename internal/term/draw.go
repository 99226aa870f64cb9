package term

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/neoncircuit/internal/config"
	"github.com/iburimskiy/neoncircuit/internal/palette"
	"github.com/iburimskiy/neoncircuit/internal/scene"
	"github.com/iburimskiy/neoncircuit/internal/theme"
)

const meterWidth = 8

// surface resolves colors against the page background and its opacity.
type surface struct {
	screen     tcell.Screen
	cols, rows int
	bg         palette.RGB
}

// Cell maps a layout position to a terminal cell.
func Cell(x, y float64) (col, row int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

// Shade mixes fg into bg by alpha, the way a translucent glyph looks.
func Shade(fg, bg palette.RGB, alpha float64) palette.RGB {
	return bg.Blend(fg, alpha)
}

func tcellColor(c palette.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s surface) put(col, row int, r rune, fg palette.RGB, alpha float64) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	st := tcell.StyleDefault.
		Background(tcellColor(s.bg)).
		Foreground(tcellColor(Shade(fg, s.bg, alpha)))
	s.screen.SetContent(col, row, r, nil, st)
}

func (s surface) text(col, row int, str string, fg palette.RGB, alpha float64) {
	for i, r := range []rune(str) {
		s.put(col+i, row, r, fg, alpha)
	}
}

func hex(h string) palette.RGB {
	c, _ := palette.HexToRGB(h)
	return c
}

// Draw paints the page and the circuit and shows the frame.
func (a *App) Draw() {
	sc := a.scene.Scheme()
	page := a.scene.PageOpacity()
	bg := Shade(hex(sc.Theme.Background), palette.RGB{}, page)
	s := surface{screen: a.screen, cols: a.cols, rows: a.rows, bg: bg}

	a.screen.SetStyle(tcell.StyleDefault.Background(tcellColor(bg)))
	a.screen.Clear()

	a.drawCircuit(s, sc, page)
	a.drawHeader(s, sc, page)
	a.drawFooter(s, sc, page)
	a.screen.Show()
}

func (a *App) drawCircuit(s surface, sc theme.Scheme, page float64) {
	c := hex(sc.Circuit)
	for _, n := range a.scene.Nodes() {
		alpha := n.Opacity.Value() * page
		if alpha <= 0 {
			continue
		}
		col, row := Cell(n.Node.X, n.Node.Y)
		for i, line := range n.Node.Glyph.Art {
			s.text(col, row+i, line, c, alpha)
		}
	}
	for _, w := range a.scene.Wires() {
		alpha := w.Opacity.Value() * page
		if alpha <= 0 {
			continue
		}
		col, row := Cell(w.Wire.X, w.Wire.Y)
		s.put(col, row, w.Wire.Glyph, c, alpha)
	}
}

func (a *App) drawHeader(s surface, sc theme.Scheme, page float64) {
	t := sc.Theme
	border := hex(sc.Border)
	card := Shade(hex(t.CardBackground), palette.RGB{}, page)
	inner := surface{screen: s.screen, cols: s.cols, rows: s.rows, bg: card}

	last := a.cols - 1
	for col := 0; col <= last; col++ {
		for row := 0; row < headerRows; row++ {
			inner.put(col, row, ' ', border, page)
		}
		inner.put(col, 0, '─', border, page)
		inner.put(col, headerRows-1, '─', border, page)
	}
	for row := 1; row < headerRows-1; row++ {
		inner.put(0, row, '│', border, page)
		inner.put(last, row, '│', border, page)
	}
	inner.put(0, 0, '╭', border, page)
	inner.put(last, 0, '╮', border, page)
	inner.put(0, headerRows-1, '╰', border, page)
	inner.put(last, headerRows-1, '╯', border, page)

	inner.text(2, 1, scene.PageTitle, hex(t.Accent), page)
	inner.text(2+len(scene.PageTitle)+2, 1, scene.StatusLine(sc), hex(t.Text), page)

	hint := "space pause  r reroll  u unpin  q quit"
	if a.paused {
		hint = "paused // " + hint
	}
	inner.text(2, 2, hint, hex(t.MutedText), page)

	if a.player != nil && a.player.Live() {
		level := min(a.player.Tap().Level(config.ScopeSamples), 1)
		meter := "♪ " + strings.Repeat("▮", int(math.Round(level*meterWidth)))
		inner.text(last-meterWidth-3, 2, meter, hex(t.Accent), page)
	}
}

func (a *App) drawFooter(s surface, sc theme.Scheme, page float64) {
	n := len(scene.PageSections)
	colW := max(a.cols/n, 1)
	row := a.rows - footerRows
	for i, sec := range scene.PageSections {
		col := i * colW
		c := scene.SectionColor(sc, i)
		s.text(col+1, row, "["+sec.Heading+"]", hex(c.Hex), page)
		s.text(col+1, row+1, sec.Body, hex(sc.Theme.MutedText), page)
	}
}

package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/neoncircuit/internal/palette"
	"github.com/iburimskiy/neoncircuit/internal/scene"
	"github.com/iburimskiy/neoncircuit/internal/theme"
)

const (
	pad        = 24
	cardHeight = 120
	// circuitAlpha keeps the circuit behind the page copy.
	circuitAlpha = 0.7
	wireWidth    = 1.5
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if g.page == nil || g.page.Bounds().Dx() != g.width || g.page.Bounds().Dy() != g.height {
		if g.page != nil {
			g.page.Deallocate()
		}
		g.page = ebiten.NewImage(g.width, g.height)
	}

	s := g.scene.Scheme()
	g.page.Fill(hexColor(s.Theme.Background))
	g.drawCircuit(g.page, s)
	g.drawCard(g.page, s)
	g.drawSections(g.page, s)
	g.drawScope(g.page, s)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(g.scene.PageOpacity()))
	screen.DrawImage(g.page, op)
}

func (g *Game) drawCard(dst *ebiten.Image, s theme.Scheme) {
	t := s.Theme
	x, y := float32(pad), float32(pad)
	w := float32(g.width - 2*pad)

	vector.DrawFilledRect(dst, x, y, w, cardHeight, hexColor(t.CardBackground), false)
	vector.StrokeRect(dst, x, y, w, cardHeight, 2, hexColor(s.Border), false)

	tx, ty := float64(pad+16), float64(pad+14)
	g.drawText(dst, scene.PageTitle, tx, ty, hexColor(t.Accent), 1)
	g.drawText(dst, scene.StatusLine(s), tx, ty+26, hexColor(t.Text), 1)

	status := fmt.Sprintf("up %s", formatDuration(g.elapsed))
	if g.cycle != nil {
		status += fmt.Sprintf(" // circuit #%d %s", g.cycle.Generation(), g.cycle.Phase())
	}
	if g.scene.Glitching() {
		status += " // glitch"
	}
	if g.paused {
		status += " // paused"
	}
	if g.lastErr != nil {
		status += " // error: " + g.lastErr.Error()
	}
	g.drawText(dst, status, tx, ty+52, hexColor(t.MutedText), 1)
	g.drawText(dst, "space pause  r reroll  c pick hue  u unpin  esc quit", tx, ty+78, hexColor(t.MutedText), 1)
}

func (g *Game) drawSections(dst *ebiten.Image, s theme.Scheme) {
	t := s.Theme
	n := len(scene.PageSections)
	y := float64(g.height) - float64(g.cfg.Circuit.BottomBand) + 20
	colW := float64(g.width-2*pad) / float64(n)

	vector.StrokeLine(dst, pad, float32(y-10), float32(g.width-pad), float32(y-10), 1, hexColor(s.Border), false)
	for i, sec := range scene.PageSections {
		x := float64(pad) + float64(i)*colW
		c := scene.SectionColor(s, i)
		g.drawText(dst, "[ "+sec.Heading+" ]", x, y, hexColor(c.Hex), 1)
		g.drawText(dst, sec.Body, x, y+20, hexColor(t.Text), 1)
	}
}

func (g *Game) drawCircuit(dst *ebiten.Image, s theme.Scheme) {
	c := hexColor(s.Circuit)
	for _, n := range g.scene.Nodes() {
		a := n.Opacity.Value() * circuitAlpha
		if a <= 0 {
			continue
		}
		img := g.text.art(n.Node.Glyph.Art)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(n.Node.X, n.Node.Y)
		op.ColorScale.ScaleWithColor(c)
		op.ColorScale.ScaleAlpha(float32(a))
		dst.DrawImage(img, op)
	}

	for _, w := range g.scene.Wires() {
		a := w.Opacity.Value() * circuitAlpha
		if a <= 0 {
			continue
		}
		wc := withAlpha(c, a)
		for _, st := range scene.WireStrokes(w.Wire) {
			vector.StrokeLine(dst, float32(st.X0), float32(st.Y0), float32(st.X1), float32(st.Y1), wireWidth, wc, true)
		}
	}
}

func (g *Game) drawScope(dst *ebiten.Image, s theme.Scheme) {
	if len(g.scope) == 0 {
		return
	}

	barWidth := float64(g.width) / 4
	barHeight := 40.0
	barX := float64(g.width) - barWidth - pad
	barY := float64(pad + cardHeight + 12)
	segmentWidth := barWidth / float64(len(g.scope))

	vector.StrokeRect(dst, float32(barX), float32(barY), float32(barWidth), float32(barHeight), 1, hexColor(s.Border), false)
	for i, v := range g.scope {
		h := clamp01(v) * (barHeight - 4)
		if h < 1 {
			h = 1
		}
		c := withAlpha(hexColor(s.SectionFor(i, 0).Hex), 0.4+0.6*clamp01(v))
		x := barX + float64(i)*segmentWidth
		y := barY + barHeight - 2 - h
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(segmentWidth-1), float32(h), c, false)
	}
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, c color.Color, alpha float64) {
	img := g.text.line(s)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(img, op)
}

func hexColor(hex string) color.RGBA {
	c, ok := palette.HexToRGB(hex)
	if !ok {
		return color.RGBA{A: 255}
	}
	return c.RGBA()
}

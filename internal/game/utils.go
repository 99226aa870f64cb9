package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/neoncircuit/internal/circuit"
)

// Debug font cell.
const (
	fontWidth  = 6
	fontHeight = 16
)

const maxCachedText = 256

// textCache keeps white text rendered once so it can be tinted per draw.
type textCache struct {
	images map[string]*ebiten.Image
}

func newTextCache() *textCache {
	return &textCache{images: map[string]*ebiten.Image{}}
}

// line renders s in the debug font's own spacing.
func (c *textCache) line(s string) *ebiten.Image {
	return c.get("l:"+s, []string{s}, fontWidth, fontHeight)
}

// art renders gate art on the layout's character cell so ports line up.
func (c *textCache) art(rows []string) *ebiten.Image {
	return c.get("a:"+strings.Join(rows, "\n"), rows, circuit.CharWidth, circuit.LineHeight)
}

func (c *textCache) get(key string, rows []string, cellW, cellH int) *ebiten.Image {
	if img, ok := c.images[key]; ok {
		return img
	}
	if len(c.images) >= maxCachedText {
		for k, img := range c.images {
			img.Deallocate()
			delete(c.images, k)
		}
	}

	cols := 1
	for _, r := range rows {
		cols = max(cols, len([]rune(r)))
	}
	img := ebiten.NewImage(cols*cellW+fontWidth, max(len(rows), 1)*cellH+fontHeight-cellH)
	for y, r := range rows {
		for x, ch := range []rune(r) {
			if ch == ' ' {
				continue
			}
			ebitenutil.DebugPrintAt(img, string(ch), x*cellW, y*cellH)
		}
	}
	c.images[key] = img
	return img
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

// withAlpha scales c to opacity a, premultiplied as ebiten expects.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

package circuit

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRand struct {
	r     *rand.Rand
	calls int
}

func (c *countingRand) Float64() float64 {
	c.calls++
	return c.r.Float64()
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestLayoutSeparation(t *testing.T) {
	cfg := DefaultConfig()
	vp := Viewport{Width: 1920, Height: 1080}

	for seed := uint64(0); seed < 200; seed++ {
		nodes, requested := Layout(vp, cfg, newRand(seed))

		require.GreaterOrEqual(t, requested, cfg.MinNodes)
		require.LessOrEqual(t, requested, cfg.MaxNodes)
		require.NotEmpty(t, nodes)
		require.LessOrEqual(t, len(nodes), requested)

		for i := range nodes {
			n := nodes[i]
			assert.GreaterOrEqual(t, n.X, cfg.Margin)
			assert.Less(t, n.X, vp.Width-cfg.Margin)
			assert.GreaterOrEqual(t, n.Y, cfg.TopBand)
			assert.Less(t, n.Y, vp.Height-cfg.BottomBand)

			for j := i + 1; j < len(nodes); j++ {
				dx := math.Abs(nodes[i].X - nodes[j].X)
				dy := math.Abs(nodes[i].Y - nodes[j].Y)
				assert.True(t, dx >= cfg.MinDistX || dy >= cfg.MinDistY,
					"seed %d: nodes %d and %d too close (dx=%.1f dy=%.1f)", seed, i, j, dx, dy)
			}
		}
	}
}

func TestLayoutTinyViewportHitsAttemptCap(t *testing.T) {
	cfg := DefaultConfig()
	rnd := &countingRand{r: newRand(4)}

	nodes, requested := Layout(Viewport{Width: 120, Height: 120}, cfg, rnd)

	// Every candidate lands within a few pixels of the first one.
	assert.Len(t, nodes, 1)
	assert.LessOrEqual(t, len(nodes), requested)
	// One draw for the count, two per attempt, one per accepted glyph.
	assert.Equal(t, 1+2*cfg.MaxAttempts+len(nodes), rnd.calls)
}

func TestLayoutFixedCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinNodes, cfg.MaxNodes = 3, 3
	_, requested := Layout(Viewport{Width: 1920, Height: 1080}, cfg, newRand(1))
	assert.Equal(t, 3, requested)
}

func TestNewNodePorts(t *testing.T) {
	right := NewNode(Glyphs[0], 100, 200)
	assert.Equal(t, 40.0, right.Width)
	assert.Equal(t, 14.0, right.Height)
	assert.Equal(t, []Point{{X: 100, Y: 200}}, right.Inputs)
	assert.Equal(t, []Point{{X: 132, Y: 200}}, right.Outputs)

	left := NewNode(Glyphs[5], 100, 200)
	assert.Equal(t, []Point{{X: 132, Y: 200}}, left.Inputs)
	assert.Equal(t, []Point{{X: 100, Y: 200}}, left.Outputs)

	inverter := NewNode(Glyphs[len(Glyphs)-1], 0, 0)
	assert.Equal(t, 72.0, inverter.Width)
	assert.Equal(t, []Point{{X: 64, Y: 0}}, inverter.Outputs)
}

func TestGlyphPortsInsideArt(t *testing.T) {
	require.Len(t, Glyphs, 17)
	for _, g := range Glyphs {
		require.Len(t, g.Inputs, 1)
		require.Len(t, g.Outputs, 1)
		for _, p := range append(g.Inputs, g.Outputs...) {
			assert.GreaterOrEqual(t, p.Col, 0)
			assert.Less(t, p.Col, g.Columns())
			assert.Less(t, p.Row, len(g.Art))
		}
	}
}

func TestNodeContains(t *testing.T) {
	n := NewNode(Glyphs[0], 100, 100)
	assert.True(t, n.Contains(100, 100, 0))
	assert.True(t, n.Contains(140, 114, 0))
	assert.False(t, n.Contains(141, 114, 0))
	assert.True(t, n.Contains(141, 114, 5))
	assert.False(t, n.Contains(70, 100, 25))
	assert.True(t, n.Contains(75, 100, 25))
}

package scene

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/neoncircuit/internal/circuit"
	"github.com/iburimskiy/neoncircuit/internal/theme"
	"github.com/iburimskiy/neoncircuit/internal/timeline"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

const frame = 5 * time.Millisecond

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+7))
}

func newScene(t *testing.T, rnd Rand, opts ...Option) (*Scene, *timeline.Timeline) {
	t.Helper()
	tl := timeline.New()
	s := New(theme.NewGenerator(newRand(1)), tl, rnd, opts...)
	require.Equal(t, 1, s.Schemes())
	return s, tl
}

// run plays d worth of frames the way the frontends do: ramps first, then
// the timeline.
func run(s *Scene, tl *timeline.Timeline, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		s.Step(frame)
		tl.Advance(frame)
	}
}

func TestTransition(t *testing.T) {
	tr := Fixed(0)
	assert.True(t, tr.Done())
	assert.Equal(t, 0.0, tr.Value())

	tr.Start(1, 100*time.Millisecond)
	assert.False(t, tr.Done())
	tr.Step(25 * time.Millisecond)
	assert.InDelta(t, 0.25, tr.Value(), 1e-9)

	// A new ramp starts where the old one is.
	tr.Start(0, 50*time.Millisecond)
	tr.Step(25 * time.Millisecond)
	assert.InDelta(t, 0.125, tr.Value(), 1e-9)
	tr.Step(time.Second)
	assert.True(t, tr.Done())
	assert.Equal(t, 0.0, tr.Value())

	tr.Start(0.7, 0)
	assert.Equal(t, 0.7, tr.Value())
	assert.Equal(t, 0.7, tr.Target())

	tr.Start(1, time.Second)
	tr.Set(0.5)
	assert.True(t, tr.Done())
	assert.Equal(t, 0.5, tr.Value())
}

func TestSceneRenderer(t *testing.T) {
	var hooked []circuit.Wire
	s, _ := newScene(t, fixedRand(0),
		WithFades(100*time.Millisecond, 200*time.Millisecond),
		WithWireHook(func(w circuit.Wire) { hooked = append(hooked, w) }),
	)

	a := circuit.NewNode(circuit.Glyphs[0], 100, 100)
	b := circuit.NewNode(circuit.Glyphs[1], 400, 300)
	s.AddNode(a)
	s.AddNode(b)
	require.Len(t, s.Nodes(), 2)
	assert.Equal(t, 0.0, s.Nodes()[0].Opacity.Value())

	s.ShowNode(b)
	s.Step(50 * time.Millisecond)
	assert.Equal(t, 0.0, s.Nodes()[0].Opacity.Value())
	assert.InDelta(t, 0.5, s.Nodes()[1].Opacity.Value(), 1e-9)

	w := circuit.Wire{Glyph: circuit.WireH, X: 132, Y: 100}
	s.AddWire(w)
	require.Len(t, s.Wires(), 1)
	assert.Equal(t, 1.0, s.Wires()[0].Opacity.Value())
	assert.Equal(t, []circuit.Wire{w}, hooked)

	s.FadeOut()
	s.Step(100 * time.Millisecond)
	assert.InDelta(t, 0.25, s.Nodes()[1].Opacity.Value(), 1e-9)
	assert.InDelta(t, 0.5, s.Wires()[0].Opacity.Value(), 1e-9)
	s.Step(100 * time.Millisecond)
	assert.Equal(t, 0.0, s.Wires()[0].Opacity.Value())

	s.Clear()
	assert.Empty(t, s.Nodes())
	assert.Empty(t, s.Wires())
}

func TestShowUnknownNodeIsIgnored(t *testing.T) {
	s, _ := newScene(t, fixedRand(0))
	s.ShowNode(circuit.NewNode(circuit.Glyphs[0], 0, 0))
	assert.Empty(t, s.Nodes())
}

func TestGlitchSequence(t *testing.T) {
	s, tl := newScene(t, fixedRand(0))

	require.True(t, s.Glitch())
	assert.False(t, s.Glitch(), "second glitch while one runs")
	assert.True(t, s.Glitching())

	run(s, tl, GlitchMinDelay)
	assert.Equal(t, 1.0, s.PageOpacity())
	assert.Equal(t, 1, s.Schemes())

	run(s, tl, 75*time.Millisecond)
	assert.InDelta(t, 0.65, s.PageOpacity(), 1e-9)

	run(s, tl, 75*time.Millisecond)
	assert.InDelta(t, GlitchDim, s.PageOpacity(), 1e-9)
	assert.Equal(t, 2, s.Schemes())

	run(s, tl, GlitchDimFade)
	assert.InDelta(t, 1.0, s.PageOpacity(), 1e-9)

	run(s, tl, 25*time.Millisecond)
	assert.InDelta(t, 0.85, s.PageOpacity(), 1e-9)
	assert.True(t, s.Glitching())

	run(s, tl, 25*time.Millisecond)
	assert.Equal(t, 1.0, s.PageOpacity())
	assert.False(t, s.Glitching())
	assert.Equal(t, 0, tl.Pending())

	require.True(t, s.Glitch())
}

func TestGlitchDelayRange(t *testing.T) {
	s, tl := newScene(t, fixedRand(0.5))
	s.Glitch()
	due, ok := tl.NextDue()
	require.True(t, ok)
	assert.Equal(t, 505*time.Millisecond, due)
}

func TestSceneDrivesCycle(t *testing.T) {
	s, tl := newScene(t, fixedRand(0))
	cfg := circuit.DefaultConfig()
	vp := func() circuit.Viewport { return circuit.Viewport{Width: 1920, Height: 1080} }
	c, err := circuit.NewCycle(cfg, vp, tl, s, newRand(5))
	require.NoError(t, err)

	c.Start()
	require.Len(t, s.Nodes(), len(c.Nodes()))
	run(s, tl, cfg.NodeFadeIn+DefaultNodeFade)
	for _, n := range s.Nodes() {
		assert.Equal(t, 1.0, n.Opacity.Value())
	}

	for c.Phase() != circuit.PhaseFadeOut {
		run(s, tl, frame)
	}
	assert.Len(t, s.Wires(), len(c.Wires()))
	run(s, tl, DefaultFadeOut/2)
	for _, w := range s.Wires() {
		assert.InDelta(t, 0.5, w.Opacity.Value(), 1e-9)
	}
	for _, n := range s.Nodes() {
		assert.InDelta(t, 0.5, n.Opacity.Value(), 1e-9)
	}

	run(s, tl, DefaultFadeOut/2)
	assert.Equal(t, 2, c.Generation())
	assert.Empty(t, s.Wires())
}

// Package scene keeps what is on screen: the themed page and the circuit
// sprites with their opacities. Frontends draw from it; the circuit cycle
// and the glitch sequence drive it through the shared timeline.
package scene

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/neoncircuit/internal/circuit"
	"github.com/iburimskiy/neoncircuit/internal/theme"
)

const (
	// DefaultNodeFade is how long a node takes to appear.
	DefaultNodeFade = 500 * time.Millisecond
	// DefaultFadeOut is how long the circuit takes to disappear.
	DefaultFadeOut = time.Second
	// DefaultSections is the number of section colors in a scheme.
	DefaultSections = 8
)

// Rand is the random source for glitch delays.
type Rand interface {
	Float64() float64
}

// NodeSprite is a gate with its opacity.
type NodeSprite struct {
	Node    *circuit.Node
	Opacity Transition
}

// WireSprite is a wire glyph with its opacity.
type WireSprite struct {
	Wire    circuit.Wire
	Opacity Transition
}

// Scene implements circuit.Renderer. It is not safe for concurrent use.
type Scene struct {
	gen      *theme.Generator
	sched    circuit.Scheduler
	rnd      Rand
	logger   *log.Logger
	sections int
	nodeFade time.Duration
	fadeOut  time.Duration
	onWire   func(circuit.Wire)

	scheme    theme.Scheme
	schemes   int
	page      Transition
	glitching bool
	nodes     []*NodeSprite
	wires     []*WireSprite
}

var _ circuit.Renderer = (*Scene)(nil)

// Option configures a Scene.
type Option func(*Scene)

// WithLogger sets the scene's logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Scene) { s.logger = l }
}

// WithSections sets how many section colors each scheme carries.
func WithSections(n int) Option {
	return func(s *Scene) { s.sections = n }
}

// WithFades sets the node fade-in and circuit fade-out durations.
func WithFades(nodeFade, fadeOut time.Duration) Option {
	return func(s *Scene) {
		s.nodeFade = nodeFade
		s.fadeOut = fadeOut
	}
}

// WithWireHook registers fn to run whenever a wire glyph appears.
func WithWireHook(fn func(circuit.Wire)) Option {
	return func(s *Scene) { s.onWire = fn }
}

// New builds a scene and applies a first scheme from gen.
func New(gen *theme.Generator, sched circuit.Scheduler, rnd Rand, opts ...Option) *Scene {
	s := &Scene{
		gen:      gen,
		sched:    sched,
		rnd:      rnd,
		logger:   log.New(io.Discard),
		sections: DefaultSections,
		nodeFade: DefaultNodeFade,
		fadeOut:  DefaultFadeOut,
		page:     Fixed(1),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Regenerate()
	return s
}

// Regenerate replaces the scheme immediately.
func (s *Scene) Regenerate() {
	s.scheme = s.gen.Scheme(s.sections)
	s.schemes++
	t := s.scheme.Theme
	s.logger.Debug("scheme applied",
		"harmony", t.Harmony,
		"primary", t.PrimaryHue,
		"accent", t.AccentHue,
		"text_contrast", t.TextContrast,
		"accent_contrast", t.AccentContrast,
	)
}

// Scheme is the scheme currently on the page.
func (s *Scene) Scheme() theme.Scheme { return s.scheme }

// Schemes counts schemes applied so far.
func (s *Scene) Schemes() int { return s.schemes }

// PageOpacity is the opacity of the whole page.
func (s *Scene) PageOpacity() float64 { return s.page.Value() }

// Nodes returns the node sprites in draw order.
func (s *Scene) Nodes() []*NodeSprite { return s.nodes }

// Wires returns the wire sprites in reveal order.
func (s *Scene) Wires() []*WireSprite { return s.wires }

// Step advances every opacity ramp by dt.
func (s *Scene) Step(dt time.Duration) {
	s.page.Step(dt)
	for _, n := range s.nodes {
		n.Opacity.Step(dt)
	}
	for _, w := range s.wires {
		w.Opacity.Step(dt)
	}
}

func (s *Scene) AddNode(n *circuit.Node) {
	s.nodes = append(s.nodes, &NodeSprite{Node: n, Opacity: Fixed(0)})
}

func (s *Scene) ShowNode(n *circuit.Node) {
	for _, sp := range s.nodes {
		if sp.Node == n {
			sp.Opacity.Start(1, s.nodeFade)
			return
		}
	}
}

func (s *Scene) AddWire(w circuit.Wire) {
	s.wires = append(s.wires, &WireSprite{Wire: w, Opacity: Fixed(1)})
	if s.onWire != nil {
		s.onWire(w)
	}
}

func (s *Scene) FadeOut() {
	for _, n := range s.nodes {
		n.Opacity.Start(0, s.fadeOut)
	}
	for _, w := range s.wires {
		w.Opacity.Start(0, s.fadeOut)
	}
}

func (s *Scene) Clear() {
	s.nodes = nil
	s.wires = nil
}

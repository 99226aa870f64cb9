// Package circuit lays out ASCII gate art, routes wires between the gates
// and runs the endless draw-in, hold and fade animation.
package circuit

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrNoSurface means the cycle was given nothing to draw on.
	ErrNoSurface = errors.New("circuit: no render surface")
	// ErrNoScheduler means the cycle was given no way to defer work.
	ErrNoScheduler = errors.New("circuit: no scheduler")
)

// Renderer receives the visible effects of the cycle.
type Renderer interface {
	// AddNode creates a hidden node.
	AddNode(n *Node)
	// ShowNode fades a node in.
	ShowNode(n *Node)
	// AddWire reveals one wire glyph.
	AddWire(w Wire)
	// FadeOut fades every node and wire.
	FadeOut()
	// Clear removes everything.
	Clear()
}

// Scheduler defers fn by d relative to now.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Phase is the stage of the animation cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLayout
	PhaseNodeFadeIn
	PhaseWireDraw
	PhaseHold
	PhaseFadeOut
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLayout:
		return "layout"
	case PhaseNodeFadeIn:
		return "node-fade-in"
	case PhaseWireDraw:
		return "wire-draw"
	case PhaseHold:
		return "hold"
	case PhaseFadeOut:
		return "fade-out"
	default:
		return "unknown"
	}
}

// Cycle owns the current nodes and wires and replaces them wholesale on
// every regeneration. It runs forever once started.
type Cycle struct {
	cfg      Config
	viewport func() Viewport
	sched    Scheduler
	out      Renderer
	rnd      Rand
	logger   *log.Logger

	phase      Phase
	generation int
	nodes      []*Node
	wires      []Wire
}

// CycleOption configures a Cycle.
type CycleOption func(*Cycle)

// WithLogger sets the cycle's logger.
func WithLogger(l *log.Logger) CycleOption {
	return func(c *Cycle) { c.logger = l }
}

// NewCycle wires a cycle to its surface. viewport is read at every
// layout so a resized surface is used from the next regeneration on.
func NewCycle(cfg Config, viewport func() Viewport, sched Scheduler, out Renderer, rnd Rand, opts ...CycleOption) (*Cycle, error) {
	if out == nil || viewport == nil {
		return nil, ErrNoSurface
	}
	if sched == nil {
		return nil, ErrNoScheduler
	}
	c := &Cycle{
		cfg:      cfg,
		viewport: viewport,
		sched:    sched,
		out:      out,
		rnd:      rnd,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Start runs the first layout. Calling it again has no effect.
func (c *Cycle) Start() {
	if c.phase != PhaseIdle {
		return
	}
	c.generate()
}

// Phase is the current stage.
func (c *Cycle) Phase() Phase { return c.phase }

// Generation counts layouts since Start.
func (c *Cycle) Generation() int { return c.generation }

// Nodes returns the nodes of the current generation.
func (c *Cycle) Nodes() []*Node {
	return append([]*Node(nil), c.nodes...)
}

// Wires returns the wire glyphs revealed so far in this generation.
func (c *Cycle) Wires() []Wire {
	return append([]Wire(nil), c.wires...)
}

func (c *Cycle) clear() {
	c.out.Clear()
	c.nodes = nil
	c.wires = nil
}

func (c *Cycle) generate() {
	c.clear()
	c.phase = PhaseLayout
	c.generation++

	vp := c.viewport()
	nodes, requested := Layout(vp, c.cfg, c.rnd)
	c.nodes = nodes
	if len(nodes) < requested {
		c.logger.Debug("layout ran out of space", "placed", len(nodes), "requested", requested, "width", vp.Width, "height", vp.Height)
	}

	for _, n := range nodes {
		c.out.AddNode(n)
		c.sched.After(c.cfg.NodeFadeIn, func() { c.out.ShowNode(n) })
	}
	c.phase = PhaseNodeFadeIn
	c.sched.After(c.cfg.Settle, c.route)
}

func (c *Cycle) route() {
	c.phase = PhaseWireDraw
	r := &Router{Nodes: c.nodes, Rand: c.rnd, GlyphDelay: c.cfg.GlyphDelay}

	var maxDelay, start time.Duration
	glyphs := 0
	for i := 0; i+1 < len(c.nodes); i++ {
		if c.cfg.SerializeWires {
			start = maxDelay
		}
		wires, end := r.Connect(c.nodes[i], c.nodes[i+1], start)
		for _, w := range wires {
			c.sched.After(w.Delay, func() {
				c.wires = append(c.wires, w)
				c.out.AddWire(w)
			})
		}
		glyphs += len(wires)
		if end > maxDelay {
			maxDelay = end
		}
	}

	c.logger.Debug("circuit routed", "generation", c.generation, "nodes", len(c.nodes), "glyphs", glyphs, "draw", maxDelay)
	c.sched.After(maxDelay, func() { c.phase = PhaseHold })
	c.sched.After(maxDelay+c.cfg.Hold, c.fadeOut)
}

func (c *Cycle) fadeOut() {
	c.phase = PhaseFadeOut
	c.out.FadeOut()
	c.sched.After(c.cfg.Fade, c.generate)
}

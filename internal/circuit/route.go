package circuit

import (
	"math"
	"time"
)

// Wire glyphs.
const (
	WireH    = '─'
	WireV    = '│'
	CornerTL = '┌'
	CornerTR = '┐'
	CornerBL = '└'
	CornerBR = '┘'
	DiagDown = '\\'
	DiagUp   = '/'
)

// DefaultDelay is the reveal spacing used when a Router has none set.
const DefaultDelay = 20 * time.Millisecond

// Wire grid step in pixels.
const (
	StepX = 12
	StepY = 16
)

// Clearance around node boxes when testing diagonal runs.
const (
	EndpointPad = 5
	ObstaclePad = 25
)

// Wire is one revealed wire glyph.
type Wire struct {
	Glyph rune
	X, Y  float64
	Delay time.Duration
}

// Router connects node ports with wire glyphs while steering diagonal
// runs around the other nodes.
type Router struct {
	Nodes      []*Node
	Rand       Rand
	GlyphDelay time.Duration
}

// Connect routes the first output of src to the first input of dst. It
// returns nil and start when either port is missing.
func (r *Router) Connect(src, dst *Node, start time.Duration) ([]Wire, time.Duration) {
	if len(src.Outputs) == 0 || len(dst.Inputs) == 0 {
		return nil, start
	}
	return r.ConnectPorts(src.Outputs[0], dst.Inputs[0], src, dst, start)
}

// ConnectPorts routes from to to. Glyph delays increase by GlyphDelay
// from start, and the returned delay is the one after the last glyph.
//
// Strategies are tried in order and the first whose diagonal is clear
// wins: horizontal-diagonal-horizontal, diagonal first, diagonal last,
// then plain orthogonal routing which is never checked.
func (r *Router) ConnectPorts(from, to Point, src, dst *Node, start time.Duration) ([]Wire, time.Duration) {
	p := &path{router: r, src: src, dst: dst, delay: start, step: r.GlyphDelay}
	if p.step <= 0 {
		p.step = DefaultDelay
	}

	if !p.centeredDiagonal(from, to) && !p.diagonalFirst(from, to) && !p.diagonalLast(from, to) {
		p.orthogonal(from, to)
	}
	return p.wires, p.delay
}

type path struct {
	router   *Router
	src, dst *Node
	wires    []Wire
	delay    time.Duration
	step     time.Duration
}

func (p *path) put(x, y float64, glyph rune) {
	p.wires = append(p.wires, Wire{Glyph: glyph, X: x, Y: y, Delay: p.delay})
	p.delay += p.step
}

func (p *path) horizontal(x1, x2, y float64) {
	for x := math.Min(x1, x2); x <= math.Max(x1, x2); x += StepX {
		p.put(x, y, WireH)
	}
}

func (p *path) vertical(x, y1, y2 float64) {
	for y := math.Min(y1, y2); y <= math.Max(y1, y2); y += StepY {
		p.put(x, y, WireV)
	}
}

// diagonal walks from (x1,y1) toward (x2,y2) until either axis reaches
// its target and returns where it stopped.
func (p *path) diagonal(x1, y1, x2, y2 float64) (float64, float64) {
	w := newWalk(x1, y1, x2, y2)
	x, y := x1, y1
	for w.continues(x, y) {
		p.put(x, y, w.glyph())
		x, y = w.step(x, y)
	}
	return x, y
}

func (p *path) diagonalClear(x1, y1, x2, y2 float64) bool {
	w := newWalk(x1, y1, x2, y2)
	x, y := x1, y1
	for w.continues(x, y) {
		if p.blocked(x, y) {
			return false
		}
		x, y = w.step(x, y)
	}
	return true
}

func (p *path) blocked(x, y float64) bool {
	for _, n := range p.router.Nodes {
		pad := float64(ObstaclePad)
		if n == p.src || n == p.dst {
			pad = EndpointPad
		}
		if n.Contains(x, y, pad) {
			return true
		}
	}
	return false
}

func (p *path) centeredDiagonal(from, to Point) bool {
	dx, dy := math.Abs(to.X-from.X), math.Abs(to.Y-from.Y)
	if dy <= 0 {
		return false
	}
	steps := math.Min(math.Floor(dx/StepX), math.Floor(dy/StepY))
	if steps <= 2 {
		return false
	}

	right, down := sign(to.X > from.X), sign(to.Y > from.Y)
	diagX, diagY := steps*StepX, steps*StepY
	before := math.Floor((dx - diagX) / 2)
	midStartX := from.X + right*before
	midEndX := midStartX + right*diagX
	midEndY := from.Y + down*diagY

	if !p.diagonalClear(midStartX, from.Y, midEndX, midEndY) {
		return false
	}

	if before > StepX {
		p.horizontal(from.X, midStartX, from.Y)
	}
	x, y := p.diagonal(midStartX, from.Y, midEndX, midEndY)
	if math.Abs(x-to.X) > StepX {
		p.horizontal(x, to.X, y)
	}
	if math.Abs(y-to.Y) > StepY {
		p.put(to.X, y, turnCorner(to.X > from.X, to.Y > from.Y))
		p.vertical(to.X, y, to.Y)
	}
	return true
}

func (p *path) diagonalFirst(from, to Point) bool {
	dx, dy := math.Abs(to.X-from.X), math.Abs(to.Y-from.Y)
	if dy <= StepY*2 || dx <= StepX*2 {
		return false
	}

	steps := p.burst(dy)
	right, down := sign(to.X > from.X), sign(to.Y > from.Y)
	endX := from.X + right*steps*StepX
	endY := from.Y + down*steps*StepY
	if !p.diagonalClear(from.X, from.Y, endX, endY) {
		return false
	}

	x, y := p.diagonal(from.X, from.Y, endX, endY)
	if math.Abs(x-to.X) > StepX {
		p.horizontal(x, to.X, y)
	}
	if math.Abs(y-to.Y) > StepY {
		p.put(to.X, y, sideCorner(to.X > from.X))
		p.vertical(to.X, y, to.Y)
	}
	return true
}

func (p *path) diagonalLast(from, to Point) bool {
	dx, dy := math.Abs(to.X-from.X), math.Abs(to.Y-from.Y)
	if dy <= StepY*2 || dx <= StepX*2 {
		return false
	}

	steps := p.burst(dy)
	right, down := sign(to.X > from.X), sign(to.Y > from.Y)
	startX := to.X - right*steps*StepX
	startY := to.Y - down*steps*StepY
	if !p.diagonalClear(startX, startY, to.X, to.Y) {
		return false
	}

	if math.Abs(from.X-startX) > StepX {
		p.horizontal(from.X, startX, from.Y)
	}
	if math.Abs(from.Y-startY) > StepY {
		p.put(startX, from.Y, sideCorner(to.X > from.X))
		p.vertical(startX, from.Y, startY)
	}
	p.diagonal(startX, startY, to.X, to.Y)
	return true
}

func (p *path) orthogonal(from, to Point) {
	right, down := to.X > from.X, to.Y > from.Y
	midX := (from.X + to.X) / 2

	if math.Abs(from.X-midX) > StepX {
		p.horizontal(from.X, midX, from.Y)
	}
	if math.Abs(from.Y-to.Y) > StepY {
		p.put(midX, from.Y, turnCorner(right, down))
		p.vertical(midX, from.Y, to.Y)
		p.put(midX, to.Y, landCorner(right, down))
	}
	if math.Abs(midX-to.X) > StepX {
		p.horizontal(midX, to.X, to.Y)
	}
}

// burst is the length in steps of a short diagonal: three to six steps,
// never more than the vertical distance allows.
func (p *path) burst(dy float64) float64 {
	return math.Min(float64(3+intn(p.router.Rand, 4)), math.Floor(dy/StepY))
}

// walk is a diagonal run whose direction is fixed by its endpoints.
type walk struct {
	right, down bool
	x2, y2      float64
}

func newWalk(x1, y1, x2, y2 float64) walk {
	return walk{right: x2 > x1, down: y2 > y1, x2: x2, y2: y2}
}

func (w walk) continues(x, y float64) bool {
	xLeft := x > w.x2
	if w.right {
		xLeft = x < w.x2
	}
	yLeft := y > w.y2
	if w.down {
		yLeft = y < w.y2
	}
	return xLeft && yLeft
}

func (w walk) step(x, y float64) (float64, float64) {
	return x + sign(w.right)*StepX, y + sign(w.down)*StepY
}

func (w walk) glyph() rune {
	if w.right == w.down {
		return DiagDown
	}
	return DiagUp
}

func sign(positive bool) float64 {
	if positive {
		return 1
	}
	return -1
}

// turnCorner is the glyph where a horizontal run turns vertical.
func turnCorner(right, down bool) rune {
	switch {
	case right && down:
		return CornerTR
	case right:
		return CornerBR
	case down:
		return CornerTL
	default:
		return CornerBL
	}
}

// landCorner is the glyph where a vertical run turns back horizontal.
func landCorner(right, down bool) rune {
	switch {
	case right && down:
		return CornerBL
	case right:
		return CornerTL
	case down:
		return CornerBR
	default:
		return CornerTR
	}
}

func sideCorner(right bool) rune {
	if right {
		return CornerTR
	}
	return CornerTL
}

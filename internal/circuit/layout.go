package circuit

import "math"

// Rand is a source of uniform numbers in [0,1).
type Rand interface {
	Float64() float64
}

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Viewport is the size of the drawing surface in pixels.
type Viewport struct {
	Width, Height float64
}

// Node is a placed gate.
type Node struct {
	Glyph   Glyph
	X, Y    float64
	Inputs  []Point
	Outputs []Point
	Width   float64
	Height  float64
}

// NewNode places g with its top-left corner at (x, y).
func NewNode(g Glyph, x, y float64) *Node {
	n := &Node{
		Glyph:  g,
		X:      x,
		Y:      y,
		Width:  float64(g.Columns() * CharWidth),
		Height: float64(len(g.Art) * LineHeight),
	}
	for _, p := range g.Inputs {
		n.Inputs = append(n.Inputs, n.portPoint(p))
	}
	for _, p := range g.Outputs {
		n.Outputs = append(n.Outputs, n.portPoint(p))
	}
	return n
}

func (n *Node) portPoint(p Port) Point {
	return Point{X: n.X + float64(p.Col*CharWidth), Y: n.Y + float64(p.Row*LineHeight)}
}

// Contains reports whether (x, y) lies in the node's box grown by pad on
// every side.
func (n *Node) Contains(x, y, pad float64) bool {
	return x >= n.X-pad && x <= n.X+n.Width+pad &&
		y >= n.Y-pad && y <= n.Y+n.Height+pad
}

// Layout places between cfg.MinNodes and cfg.MaxNodes gates by rejection
// sampling. A candidate is kept unless it is within MinDistX horizontally
// and MinDistY vertically of a placed node. Sampling stops after
// cfg.MaxAttempts candidates, so fewer nodes than requested may come back.
func Layout(vp Viewport, cfg Config, rnd Rand) (nodes []*Node, requested int) {
	requested = cfg.MinNodes
	if span := cfg.MaxNodes - cfg.MinNodes + 1; span > 1 {
		requested += intn(rnd, span)
	}

	nodes = make([]*Node, 0, requested)
	for attempts := 0; len(nodes) < requested && attempts < cfg.MaxAttempts; attempts++ {
		x := cfg.Margin + rnd.Float64()*(vp.Width-cfg.Margin*2)
		y := cfg.TopBand + rnd.Float64()*(vp.Height-cfg.TopBand-cfg.BottomBand)

		if farEnough(nodes, x, y, cfg.MinDistX, cfg.MinDistY) {
			nodes = append(nodes, NewNode(Glyphs[intn(rnd, len(Glyphs))], x, y))
		}
	}
	return nodes, requested
}

func farEnough(nodes []*Node, x, y, minX, minY float64) bool {
	for _, n := range nodes {
		if math.Abs(n.X-x) < minX && math.Abs(n.Y-y) < minY {
			return false
		}
	}
	return true
}

func intn(rnd Rand, n int) int {
	v := int(math.Floor(rnd.Float64() * float64(n)))
	if v >= n {
		v = n - 1
	}
	return v
}

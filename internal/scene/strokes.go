package scene

import "github.com/iburimskiy/neoncircuit/internal/circuit"

// Stroke is a line segment in pixels.
type Stroke struct {
	X0, Y0, X1, Y1 float64
}

// WireStrokes draws a wire glyph as segments inside its StepX by StepY
// cell. The cell is centered on the text row the glyph sits on so wires
// meet the gate art at its ports.
func WireStrokes(w circuit.Wire) []Stroke {
	const (
		hw = circuit.StepX / 2.0
		hh = circuit.StepY / 2.0
	)
	cx := w.X + hw
	cy := w.Y + circuit.LineHeight/2.0

	right := Stroke{cx, cy, cx + hw, cy}
	left := Stroke{cx - hw, cy, cx, cy}
	up := Stroke{cx, cy - hh, cx, cy}
	down := Stroke{cx, cy, cx, cy + hh}

	switch w.Glyph {
	case circuit.WireH:
		return []Stroke{{cx - hw, cy, cx + hw, cy}}
	case circuit.WireV:
		return []Stroke{{cx, cy - hh, cx, cy + hh}}
	case circuit.CornerTL:
		return []Stroke{right, down}
	case circuit.CornerTR:
		return []Stroke{left, down}
	case circuit.CornerBL:
		return []Stroke{right, up}
	case circuit.CornerBR:
		return []Stroke{left, up}
	case circuit.DiagDown:
		return []Stroke{{cx - hw, cy - hh, cx + hw, cy + hh}}
	case circuit.DiagUp:
		return []Stroke{{cx - hw, cy + hh, cx + hw, cy - hh}}
	default:
		return nil
	}
}

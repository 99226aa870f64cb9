package circuit

// Character cell used to place gate art and its ports, in pixels.
const (
	CharWidth  = 8
	LineHeight = 14
)

// Port is a connection point given as a character offset into the art.
type Port struct {
	Row, Col int
}

// Glyph is a fixed piece of gate art with one input and one output.
type Glyph struct {
	Art     []string
	Inputs  []Port
	Outputs []Port
}

// Columns is the width of the widest art row in characters.
func (g Glyph) Columns() int {
	w := 0
	for _, row := range g.Art {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w
}

func rightward(art string) Glyph {
	return Glyph{
		Art:     []string{art},
		Inputs:  []Port{{Row: 0, Col: 0}},
		Outputs: []Port{{Row: 0, Col: len([]rune(art)) - 1}},
	}
}

func leftward(art string) Glyph {
	return Glyph{
		Art:     []string{art},
		Inputs:  []Port{{Row: 0, Col: len([]rune(art)) - 1}},
		Outputs: []Port{{Row: 0, Col: 0}},
	}
}

// Glyphs is the gate set nodes are drawn from.
var Glyphs = []Glyph{
	// gates facing right
	rightward("-|>|-"),
	rightward("-]>|-"),
	rightward("-|>]-"),
	rightward("-|>S-"),
	rightward("-]>I-"),
	// gates facing left
	leftward("-|<|-"),
	leftward("-|<[-"),
	leftward("-[<|-"),
	leftward("-S<|-"),
	leftward("-I<[-"),
	// pass-through
	rightward("-| |-"),
	rightward("-| (-"),
	rightward("-) |-"),
	rightward("-||-"),
	rightward("-|(-"),
	rightward("-)|-"),
	// inverter
	rightward("---|>o---"),
}

package circuit

import "time"

// Config holds layout, routing and timing parameters of the animation.
type Config struct {
	MinNodes    int
	MaxNodes    int
	MaxAttempts int

	Margin     float64 // left and right edge margin
	TopBand    float64 // reserved band above the circuit
	BottomBand float64 // reserved band below the circuit
	MinDistX   float64
	MinDistY   float64

	GlyphDelay time.Duration // reveal spacing between wire glyphs
	NodeFadeIn time.Duration // node creation to visible
	Settle     time.Duration // layout to first wire
	Hold       time.Duration // last wire to fade-out
	Fade       time.Duration // fade-out to regeneration

	// SerializeWires starts each pair's draw-in where the previous pair
	// ended. When false every pair starts at zero and they draw together.
	SerializeWires bool
}

// DefaultConfig returns the stock animation parameters.
func DefaultConfig() Config {
	return Config{
		MinNodes:    6,
		MaxNodes:    10,
		MaxAttempts: 150,
		Margin:      80,
		TopBand:     180,
		BottomBand:  100,
		MinDistX:    250,
		MinDistY:    280,
		GlyphDelay:  20 * time.Millisecond,
		NodeFadeIn:  50 * time.Millisecond,
		Settle:      time.Second,
		Hold:        3 * time.Second,
		Fade:        time.Second,
	}
}

// Package sound plays the short ticks that accompany wire reveals and keeps
// the recent output around for the scope.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/neoncircuit/internal/circuit"
)

// decayTimeConstants is how many e-folds the envelope falls over a blip.
const decayTimeConstants = 5.0

// Blip streams a sine at freq whose amplitude decays from gain to near
// silence over d.
func Blip(sr beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	total := sr.N(d)
	decay := decayTimeConstants / d.Seconds()
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			t := float64(pos) / float64(sr)
			v := gain * math.Exp(-t*decay) * math.Sin(2*math.Pi*freq*t)
			samples[n] = [2]float64{v, v}
			n++
			pos++
		}
		return n, true
	})
}

// Pitch picks a tone for a wire glyph so turns sound different from runs.
func Pitch(glyph rune) float64 {
	switch glyph {
	case circuit.WireH:
		return 880
	case circuit.WireV:
		return 660
	case circuit.DiagDown, circuit.DiagUp:
		return 990
	case circuit.CornerTL, circuit.CornerTR, circuit.CornerBL, circuit.CornerBR:
		return 1320
	default:
		return 440
	}
}

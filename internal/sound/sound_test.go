package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/neoncircuit/internal/circuit"
)

// ramp streams 1, 2, 3, ... on both channels.
func ramp() beep.Streamer {
	v := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v++
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func drain(s beep.Streamer, n int) int {
	buf := make([][2]float64, 64)
	got := 0
	for got < n {
		k, ok := s.Stream(buf[:min(len(buf), n-got)])
		got += k
		if !ok {
			break
		}
	}
	return got
}

func TestTapKeepsLatestSamplesInOrder(t *testing.T) {
	tap := NewTap(ramp(), 8)
	drain(tap, 5)

	assert.Equal(t, [][2]float64{{3, 3}, {4, 4}, {5, 5}}, tap.Snapshot(3))

	drain(tap, 6)
	snap := tap.Snapshot(100)
	require.Len(t, snap, 8)
	for i, s := range snap {
		assert.Equal(t, float64(4+i), s[0])
	}
	assert.Nil(t, tap.Snapshot(0))
	assert.Equal(t, 11.0, tap.Level(1))
}

func TestBlip(t *testing.T) {
	sr := beep.SampleRate(8000)
	s := Blip(sr, 440, 50*time.Millisecond, 0.5)

	buf := make([][2]float64, 1000)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, sr.N(50*time.Millisecond), n)

	assert.Equal(t, 0.0, buf[0][0])
	peak := 0.0
	for _, v := range buf[:n] {
		assert.Equal(t, v[0], v[1])
		peak = math.Max(peak, math.Abs(v[0]))
	}
	assert.LessOrEqual(t, peak, 0.5)
	assert.Greater(t, peak, 0.25)
	// The tail has decayed by five time constants.
	assert.Less(t, math.Abs(buf[n-1][0]), 0.5*math.Exp(-4.9))

	n, ok = s.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestPitch(t *testing.T) {
	assert.Equal(t, 880.0, Pitch(circuit.WireH))
	assert.Equal(t, 1320.0, Pitch(circuit.CornerBL))
	assert.Equal(t, Pitch(circuit.DiagUp), Pitch(circuit.DiagDown))
	assert.Equal(t, 440.0, Pitch('x'))
}

func TestPlayerRateLimit(t *testing.T) {
	now := time.Unix(1700000000, 0)
	p := NewPlayer(8000, WithClock(func() time.Time { return now }))
	assert.False(t, p.Live())

	assert.True(t, p.Blip(circuit.WireH))
	now = now.Add(20 * time.Millisecond)
	assert.False(t, p.Blip(circuit.WireH))
	now = now.Add(20 * time.Millisecond)
	assert.True(t, p.Blip(circuit.WireV))

	drain(p.Tap(), 200)
	assert.Positive(t, p.Tap().Level(200))

	p.Stop()
	drain(p.Tap(), ScopeRingSize)
	assert.Zero(t, p.Tap().Level(ScopeRingSize))
}

func TestPlayerMuted(t *testing.T) {
	p := NewPlayer(0, WithVolume(-1))
	assert.False(t, p.Blip(circuit.WireH))
	drain(p.Tap(), 100)
	assert.Zero(t, p.Tap().Level(100))
}

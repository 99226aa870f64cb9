package scene

import "time"

// Transition is a linear opacity ramp stepped by frame time.
type Transition struct {
	from, to float64
	elapsed  time.Duration
	duration time.Duration
}

// Fixed is a transition that rests at v.
func Fixed(v float64) Transition {
	return Transition{from: v, to: v}
}

// Start ramps from the current value to v over d. A zero d jumps.
func (t *Transition) Start(v float64, d time.Duration) {
	t.from = t.Value()
	t.to = v
	t.elapsed = 0
	t.duration = d
}

// Set jumps to v.
func (t *Transition) Set(v float64) {
	*t = Fixed(v)
}

// Step moves the ramp forward by dt.
func (t *Transition) Step(dt time.Duration) {
	if dt <= 0 || t.Done() {
		return
	}
	t.elapsed += dt
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
}

// Value is the current opacity.
func (t Transition) Value() float64 {
	if t.Done() {
		return t.to
	}
	f := float64(t.elapsed) / float64(t.duration)
	return t.from + (t.to-t.from)*f
}

// Target is the value the ramp ends at.
func (t Transition) Target() float64 { return t.to }

// Done reports whether the ramp has reached its target.
func (t Transition) Done() bool {
	return t.elapsed >= t.duration
}

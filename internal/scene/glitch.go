package scene

import "time"

// Glitch timing.
const (
	GlitchMinDelay  = 10 * time.Millisecond
	GlitchMaxDelay  = 1000 * time.Millisecond
	GlitchDim       = 0.3
	GlitchDimFade   = 150 * time.Millisecond
	GlitchFlicker   = 0.7
	GlitchFlickFade = 50 * time.Millisecond
)

// Glitching reports whether a glitch sequence is running.
func (s *Scene) Glitching() bool { return s.glitching }

// Glitch swaps the scheme behind a short flicker. After a random delay the
// page dims, the new scheme is applied while it comes back, and one more
// quick dip follows. A glitch requested while one runs is dropped.
func (s *Scene) Glitch() bool {
	if s.glitching {
		return false
	}
	s.glitching = true

	span := float64(GlitchMaxDelay - GlitchMinDelay)
	delay := GlitchMinDelay + time.Duration(s.rnd.Float64()*span)
	s.logger.Debug("glitch scheduled", "delay", delay)

	s.sched.After(delay, func() {
		s.page.Start(GlitchDim, GlitchDimFade)
		s.sched.After(GlitchDimFade, func() {
			s.Regenerate()
			s.page.Start(1, GlitchDimFade)
			s.sched.After(GlitchDimFade, func() {
				s.page.Start(GlitchFlicker, GlitchFlickFade)
				s.sched.After(GlitchFlickFade, func() {
					s.page.Set(1)
					s.glitching = false
				})
			})
		})
	})
	return true
}

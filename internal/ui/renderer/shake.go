package renderer

import "math/rand"

// Shake jitters the whole frame for a few frames after a capture
type Shake struct {
	frames    int
	total     int
	amplitude float64
}

// Trigger starts a shake lasting frames frames
func (s *Shake) Trigger(frames int, amplitude float64) {
	s.frames = frames
	s.total = frames
	s.amplitude = amplitude
}

// Active reports whether the shake is still running
func (s *Shake) Active() bool {
	return s.frames > 0
}

// Next returns this frame's offset, decaying linearly to zero
func (s *Shake) Next(rng *rand.Rand) (float64, float64) {
	if s.frames <= 0 {
		return 0, 0
	}
	scale := s.amplitude * float64(s.frames) / float64(s.total)
	s.frames--
	return (rng.Float64()*2 - 1) * scale, (rng.Float64()*2 - 1) * scale
}

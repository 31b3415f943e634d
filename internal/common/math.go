package common

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates between a and b by t in [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseOutCubic decelerates toward 1
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1) - 1
	return t*t*t + 1
}

// EaseInOutQuad accelerates then decelerates
func EaseInOutQuad(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Progress reports how far elapsed is through a window starting at delay and
// lasting duration, clamped to [0, 1]
func Progress(elapsed, delay, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp((elapsed-delay)/duration, 0, 1)
}

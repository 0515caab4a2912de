package common

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Deadzone zeroes readings whose magnitude is below the threshold and
// rescales the remainder so output still covers the full [-1,1] range.
func Deadzone(v, threshold float64) float64 {
	if threshold <= 0 {
		return v
	}
	if v > -threshold && v < threshold {
		return 0
	}
	sign := 1.0
	if v < 0 {
		sign = -1
	}
	scaled := (v*sign - threshold) / (1 - threshold)
	return sign * Clamp(scaled, 0, 1)
}

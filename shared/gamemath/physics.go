package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Sign returns 1 for values >= 0 and -1 otherwise. Zero counts as positive so
// that an axis with no travel and no remaining distance compares equal.
func Sign(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}

// Overlaps reports whether two axis-aligned rectangles intersect. margin grows
// the first rectangle on every side, so a margin of 1 also accepts touching.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh, margin float64) bool {
	return ax-margin < bx+bw &&
		ax+aw+margin > bx &&
		ay-margin < by+bh &&
		ay+ah+margin > by
}

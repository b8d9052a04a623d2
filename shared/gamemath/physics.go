package gamemath

import "math"

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Dist2 is the squared distance between two points.
func Dist2(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return dx*dx + dy*dy
}

// Angle returns the direction of (dx, dy) in radians, 0 pointing right.
func Angle(dx, dy float64) float64 {
	return math.Atan2(dy, dx)
}

// ClampUnit scales (x, y) down to unit length if it is longer than 1.
func ClampUnit(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l <= 1 {
		return x, y
	}
	return x / l, y / l
}

// Approach moves current toward target by the given fraction.
func Approach(current, target, fraction float64) float64 {
	return current + (target-current)*fraction
}

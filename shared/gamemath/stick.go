package gamemath

import "math"

// ClampAxis clamps an analog axis to [-1, 1]. Non-finite values read as 0.
func ClampAxis(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// ApplyRadialDeadzone zeroes a stick vector whose length is below deadzone.
// Vectors outside the deadzone are returned unchanged.
func ApplyRadialDeadzone(x, y, deadzone float64) (float64, float64) {
	if math.Hypot(x, y) < deadzone {
		return 0, 0
	}
	return x, y
}

// KeyAxis turns a pair of opposing digital inputs into an axis value.
func KeyAxis(negative, positive bool) float64 {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	}
	return 0
}

// NormalizeStick scales a keyboard-built vector so diagonals are unit length.
func NormalizeStick(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l <= 1 {
		return x, y
	}
	return x / l, y / l
}

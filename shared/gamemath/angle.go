package gamemath

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// WrapAngle maps any finite angle into [-π, π).
// The double modulo keeps negative inputs positive before the shift back.
func WrapAngle(angle float64) float64 {
	if angle >= -math.Pi && angle < math.Pi {
		return angle
	}
	return math.Mod(math.Mod(angle+math.Pi, TwoPi)+TwoPi, TwoPi) - math.Pi
}

// ArmAngle converts a raw body angle into the controller's angle space.
// The left arm reads the negated body angle. The right arm is built mirrored,
// so its neutral pose sits half a turn away.
func ArmAngle(raw float64, mirrored bool) float64 {
	angle := -raw
	if mirrored {
		angle += math.Pi
	}
	return WrapAngle(angle)
}

// WrapDelta applies a single 2π correction to an angle difference.
// Inputs further than 3π from zero stay out of range.
func WrapDelta(delta float64) float64 {
	if delta > math.Pi {
		delta -= TwoPi
	}
	if delta < -math.Pi {
		delta += TwoPi
	}
	return delta
}

// StickAngle returns the heading of a stick vector.
func StickAngle(x, y float64) float64 {
	return math.Atan2(y, x)
}

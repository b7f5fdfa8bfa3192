package gamemath

import (
	"math"
	"testing"
)

func TestWrapAngleRangeAndIdempotence(t *testing.T) {
	for raw := -20.0; raw <= 20.0; raw += 0.137 {
		once := WrapAngle(raw)
		if once < -math.Pi || once >= math.Pi {
			t.Fatalf("WrapAngle(%f) = %f, outside [-π, π)", raw, once)
		}
		twice := WrapAngle(once)
		if math.Abs(twice-once) > 1e-12 {
			t.Fatalf("WrapAngle not idempotent at %f: once=%f twice=%f", raw, once, twice)
		}
		// Same direction as the input.
		if d := math.Abs(math.Remainder(once-raw, TwoPi)); d > 1e-9 {
			t.Fatalf("WrapAngle(%f) = %f changes direction by %f", raw, once, d)
		}
	}
}

func TestWrapAngleBoundaries(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, -math.Pi},
		{-math.Pi, -math.Pi},
		{math.Pi / 2, math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
	}
	for _, c := range cases {
		if got := WrapAngle(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("WrapAngle(%f) = %f, want %f", c.in, got, c.want)
		}
	}
}

// An arm already at a target angle in range must read that same angle back,
// so wrapping is the identity on [-π, π).
func TestWrapAngleIsIdentityInRange(t *testing.T) {
	for a := -math.Pi; a < math.Pi; a += 0.01 {
		if got := WrapAngle(a); got != a {
			t.Fatalf("WrapAngle(%v) = %v; want it unchanged", a, got)
		}
		shifted := math.Mod(math.Mod(a+math.Pi, TwoPi)+TwoPi, TwoPi) - math.Pi
		if math.Abs(shifted-a) > 1e-9 {
			t.Fatalf("shifted wrap of %v = %v", a, shifted)
		}
	}
}

func TestArmAngleRestPoses(t *testing.T) {
	if got := ArmAngle(0, false); math.Abs(got) > 1e-12 {
		t.Fatalf("left arm at rest = %f, want 0", got)
	}
	// Right arm rests half a turn away; -π and π are the same heading.
	if got := ArmAngle(0, true); math.Abs(math.Abs(got)-math.Pi) > 1e-12 {
		t.Fatalf("right arm at rest = %f, want ±π", got)
	}
	if got := ArmAngle(0.5, false); math.Abs(got+0.5) > 1e-12 {
		t.Fatalf("left arm angle is not negated: got %f", got)
	}
}

func TestWrapDeltaSingleStep(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{math.Pi + 0.5, 0.5 - math.Pi},
		{-math.Pi - 0.5, math.Pi - 0.5},
		// Only one correction is applied.
		{4 * math.Pi, 2 * math.Pi},
		{-4 * math.Pi, -2 * math.Pi},
	}
	for _, c := range cases {
		if got := WrapDelta(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("WrapDelta(%f) = %f, want %f", c.in, got, c.want)
		}
	}
}

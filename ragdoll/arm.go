package ragdoll

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/slothgame/sloth/shared/gamemath"
)

// Side identifies one of the sloth's limbs.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// ArmCommand is the controller output for one arm on one tick.
type ArmCommand struct {
	Target     float64 // Stick heading
	Current    float64 // Arm angle in stick space
	Omega      float64 // Scaled angular velocity
	DeltaTheta float64
	Magnitude  float64 // Stick deflection
	Signal     float64 // Sigmoid output in (-5, 5)
	Torque     float64
	Suppressed bool // Computed but not applied
}

// ArmController turns a stick vector into a torque on one arm.
type ArmController struct {
	Side Side
	// Length of the arm. The torque law scales with stick deflection, not
	// with this.
	Length float64

	tuning ArmTuning
}

func NewArmController(side Side, length float64, tuning ArmTuning) *ArmController {
	return &ArmController{Side: side, Length: length, tuning: tuning}
}

// ComputeTorque evaluates the control law. It has no side effects; NaN or
// infinite inputs propagate to the result.
func (a *ArmController) ComputeTorque(input mgl64.Vec2, currentAngleRaw, angularVelocityRaw float64) ArmCommand {
	x, y := input.X(), input.Y()

	cmd := ArmCommand{
		Target:    gamemath.StickAngle(x, y),
		Current:   gamemath.ArmAngle(currentAngleRaw, a.Side == Right),
		Omega:     angularVelocityRaw * a.tuning.AngularVelocityGain,
		Magnitude: math.Hypot(x, y),
	}
	cmd.DeltaTheta = gamemath.WrapDelta(cmd.Target - cmd.Current)
	cmd.Signal = gamemath.SigmoidTorque(cmd.DeltaTheta, cmd.Omega/a.tuning.OmegaNormalizer, a.tuning.DeltaThetaWeight)
	cmd.Torque = a.tuning.TorqueGain * cmd.Signal * cmd.Magnitude
	return cmd
}

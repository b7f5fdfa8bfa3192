package ragdoll

import "github.com/go-gl/mathgl/mgl64"

// ArmTuning holds the constants of the arm torque law.
type ArmTuning struct {
	TorqueGain          float64 // Scales the sigmoid output into newton-metres
	OmegaNormalizer     float64 // Divides the scaled angular velocity before the sigmoid
	DeltaThetaWeight    float64 // Slope of the sigmoid against the angle error
	AngularVelocityGain float64 // Applied to the raw angular velocity reading
}

// GrabConfig holds the player-facing grab rules.
type GrabConfig struct {
	PermissiveGrab        bool // Grab thin air by pinning the hand to the fallback anchor
	GrabbingHandCanRotate bool // Keep driving an arm while its hand holds on
}

// Config is everything the sloth controllers read. It is passed by value.
type Config struct {
	Arm  ArmTuning
	Grab GrabConfig
}

// SkeletonConfig contains ragdoll body dimensions in metres.
type SkeletonConfig struct {
	TorsoHalfExtents mgl64.Vec2
	ArmLength        float64
	ArmThickness     float64
	HandRadius       float64
	HandSensorRadius float64

	TorsoDensity float64
	ArmDensity   float64
	HandDensity  float64
	Friction     float64

	ArmAngularDamping float64

	// Group is shared by every sloth body. Negative values never self-collide.
	Group int

	// FallbackParking is where the fallback anchor waits between grabs.
	FallbackParking mgl64.Vec2

	LeftHandTag  string
	RightHandTag string
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		Arm: ArmTuning{
			TorqueGain:          4,
			OmegaNormalizer:     4,
			DeltaThetaWeight:    4,
			AngularVelocityGain: 2,
		},
		Grab: GrabConfig{
			PermissiveGrab:        false,
			GrabbingHandCanRotate: true,
		},
	}
}

// DefaultSkeleton returns the proportions of the game's sloth.
func DefaultSkeleton() SkeletonConfig {
	return SkeletonConfig{
		TorsoHalfExtents: mgl64.Vec2{0.35, 0.5},
		ArmLength:        1.2,
		ArmThickness:     0.16,
		HandRadius:       0.1,
		HandSensorRadius: 0.18,

		TorsoDensity: 1.0,
		ArmDensity:   0.6,
		HandDensity:  0.6,
		Friction:     0.6,

		ArmAngularDamping: 0.5,

		Group:           -1,
		FallbackParking: mgl64.Vec2{-1000, -1000},

		LeftHandTag:  "sloth left hand",
		RightHandTag: "sloth right hand",
	}
}

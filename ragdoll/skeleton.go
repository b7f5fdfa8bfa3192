package ragdoll

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/slothgame/sloth/physics"
)

// Pose is a body transform to restore on reset.
type Pose struct {
	Body     physics.BodyID
	Position mgl64.Vec2
	Angle    float64
}

// Build creates a sloth in w with its torso centred on at.
//
// The left arm hangs off the torso's left shoulder and points along +x at
// rest, the right arm is its mirror image along -x. Each arm ends in a round
// hand joined at the wrist and carrying the hand sensor. A static fallback
// anchor is parked at sk.FallbackParking for permissive grabs.
func Build(w physics.World, at mgl64.Vec2, sk SkeletonConfig) (Parts, error) {
	p := Parts{
		LeftSensor:  sk.LeftHandTag,
		RightSensor: sk.RightHandTag,
		ArmLength:   sk.ArmLength,
		Bodies:      physics.NewBodySet(),
	}

	p.Torso = w.CreateBody(physics.BodyDef{
		Name:        "torso",
		Kind:        physics.Dynamic,
		Position:    at,
		Shape:       physics.Box,
		HalfExtents: sk.TorsoHalfExtents,
		Density:     sk.TorsoDensity,
		Friction:    sk.Friction,
		Group:       sk.Group,
	})
	p.Bodies.Add(p.Torso)

	var err error
	p.LeftArm, p.LeftHand, err = buildArm(w, p.Torso, at, Left, sk)
	if err != nil {
		return Parts{}, err
	}
	p.RightArm, p.RightHand, err = buildArm(w, p.Torso, at, Right, sk)
	if err != nil {
		return Parts{}, err
	}
	for _, id := range []physics.BodyID{p.LeftArm, p.LeftHand, p.RightArm, p.RightHand} {
		p.Bodies.Add(id)
	}

	p.Fallback = w.CreateBody(physics.BodyDef{
		Name:     "fallback anchor",
		Kind:     physics.Static,
		Position: sk.FallbackParking,
	})
	p.Bodies.Add(p.Fallback)

	return p, nil
}

// buildArm creates one arm segment and its hand, jointed to the torso at the
// shoulder.
func buildArm(w physics.World, torso physics.BodyID, at mgl64.Vec2, side Side, sk SkeletonConfig) (arm, hand physics.BodyID, err error) {
	dir := 1.0
	tag := sk.LeftHandTag
	if side == Right {
		dir = -1
		tag = sk.RightHandTag
	}

	shoulder := mgl64.Vec2{dir * sk.TorsoHalfExtents.X(), sk.TorsoHalfExtents.Y() * 0.8}
	half := sk.ArmLength / 2

	arm = w.CreateBody(physics.BodyDef{
		Name:           side.String() + " arm",
		Kind:           physics.Dynamic,
		Position:       at.Add(shoulder).Add(mgl64.Vec2{dir * half, 0}),
		Shape:          physics.Box,
		HalfExtents:    mgl64.Vec2{half, sk.ArmThickness / 2},
		Density:        sk.ArmDensity,
		Friction:       sk.Friction,
		AngularDamping: sk.ArmAngularDamping,
		Group:          sk.Group,
	})
	hand = w.CreateBody(physics.BodyDef{
		Name:     side.String() + " hand",
		Kind:     physics.Dynamic,
		Position: at.Add(shoulder).Add(mgl64.Vec2{dir * sk.ArmLength, 0}),
		Shape:    physics.Circle,
		Radius:   sk.HandRadius,
		Density:  sk.HandDensity,
		Friction: sk.Friction,
		Group:    sk.Group,
	})

	if err = w.AddSensor(hand, physics.SensorDef{Tag: tag, Radius: sk.HandSensorRadius}); err != nil {
		return 0, 0, fmt.Errorf("could not add %s hand sensor: %w", side, err)
	}
	if _, err = w.CreateRevoluteJoint(torso, arm, shoulder, mgl64.Vec2{-dir * half, 0}, false); err != nil {
		return 0, 0, fmt.Errorf("could not join %s shoulder: %w", side, err)
	}
	if _, err = w.CreateRevoluteJoint(arm, hand, mgl64.Vec2{dir * half, 0}, mgl64.Vec2{}, false); err != nil {
		return 0, 0, fmt.Errorf("could not join %s wrist: %w", side, err)
	}
	return arm, hand, nil
}

// CapturePoses records the current transform of every body in ids.
func CapturePoses(b physics.Backend, ids ...physics.BodyID) []Pose {
	poses := make([]Pose, 0, len(ids))
	for _, id := range ids {
		poses = append(poses, Pose{Body: id, Position: b.BodyPosition(id), Angle: b.BodyAngle(id)})
	}
	return poses
}

// RestorePoses moves every body back to its pose and stops it.
func RestorePoses(w physics.World, poses []Pose) {
	for _, p := range poses {
		w.SetBodyTransform(p.Body, p.Position, p.Angle)
		w.SetBodyVelocity(p.Body, mgl64.Vec2{}, 0)
	}
}

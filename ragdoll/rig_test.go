package ragdoll

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/slothgame/sloth/physics"
	"github.com/slothgame/sloth/physics/physicstest"
)

const (
	leftTag  = "sloth left hand"
	rightTag = "sloth right hand"
)

// rig is a sloth-shaped set of bodies in a fake world plus two bars to hold.
type rig struct {
	world *physicstest.World
	parts Parts
	barA  physics.BodyID
	barB  physics.BodyID
}

func newRig() *rig {
	w := physicstest.New()
	body := func(name string, kind physics.BodyKind, pos mgl64.Vec2) physics.BodyID {
		return w.CreateBody(physics.BodyDef{Name: name, Kind: kind, Position: pos})
	}

	parts := Parts{
		Torso:       body("torso", physics.Dynamic, mgl64.Vec2{0, 0}),
		LeftArm:     body("left arm", physics.Dynamic, mgl64.Vec2{0.5, 0}),
		RightArm:    body("right arm", physics.Dynamic, mgl64.Vec2{-0.5, 0}),
		LeftHand:    body("left hand", physics.Dynamic, mgl64.Vec2{1.5, 0}),
		RightHand:   body("right hand", physics.Dynamic, mgl64.Vec2{-1.5, 0}),
		Fallback:    body("fallback", physics.Static, mgl64.Vec2{-1000, -1000}),
		LeftSensor:  leftTag,
		RightSensor: rightTag,
		ArmLength:   1.4,
	}
	parts.Bodies = physics.NewBodySet(parts.Torso, parts.LeftArm, parts.RightArm, parts.LeftHand, parts.RightHand, parts.Fallback)

	return &rig{
		world: w,
		parts: parts,
		barA:  body("bar a", physics.Static, mgl64.Vec2{1.5, 0.2}),
		barB:  body("bar b", physics.Static, mgl64.Vec2{1.7, 0.2}),
	}
}

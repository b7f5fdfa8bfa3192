// Package physics defines the narrow rigid-body capability the sloth
// controllers depend on, and the construction surface the game uses to build
// worlds on top of a concrete engine.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// BodyID is an opaque handle to a rigid body owned by a World.
type BodyID uint32

// JointID is an opaque handle to a joint owned by a World.
type JointID uint32

// NoBody is never handed out by a World.
const NoBody BodyID = 0

// BodySet is a set of bodies, used to keep a ragdoll from grabbing itself.
type BodySet map[BodyID]struct{}

// NewBodySet returns a set containing ids.
func NewBodySet(ids ...BodyID) BodySet {
	s := make(BodySet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set. A nil set contains nothing.
func (s BodySet) Has(id BodyID) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id.
func (s BodySet) Add(id BodyID) {
	s[id] = struct{}{}
}

// Backend is everything the arm and grab controllers need from a physics
// engine. All calls are synchronous and must not be made while the engine is
// stepping.
type Backend interface {
	BodyAngle(id BodyID) float64
	BodyAngularVelocity(id BodyID) float64
	BodyPosition(id BodyID) mgl64.Vec2
	ApplyTorque(id BodyID, torque float64, wake bool)
	CreateRevoluteJoint(a, b BodyID, anchorA, anchorB mgl64.Vec2, collideConnected bool) (JointID, error)
	DestroyJoint(id JointID)
	// ContactTarget returns the earliest-begun body still touching the
	// sensor tagged sensorTag that is not in exclude.
	ContactTarget(sensorTag string, exclude BodySet) (BodyID, bool)
	SetBodyTransform(id BodyID, pos mgl64.Vec2, angle float64)
}

// World is a Backend that can also be built up and stepped.
type World interface {
	Backend

	CreateBody(def BodyDef) BodyID
	AddSensor(id BodyID, def SensorDef) error
	// SetBodyVelocity drives kinematic bodies and zeroes dynamic ones on
	// reset.
	SetBodyVelocity(id BodyID, linear mgl64.Vec2, angular float64)
	Step(dt float64)

	// Body returns the drawable state of a body.
	Body(id BodyID) (BodyInfo, bool)
	// Bodies returns every body in creation order.
	Bodies() []BodyID
	// Joints returns the world anchors of every live joint.
	Joints() []JointInfo

	Close()
}

// Package physicstest provides a deterministic in-memory physics.World for
// tests. It integrates torque into rotation, ignores collisions, and lets the
// test drive sensor contacts by hand.
package physicstest

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/slothgame/sloth/physics"
)

// TorqueCall records one ApplyTorque call.
type TorqueCall struct {
	Body   physics.BodyID
	Torque float64
	Wake   bool
}

// Joint is a joint created through the world.
type Joint struct {
	A, B             physics.BodyID
	AnchorA, AnchorB mgl64.Vec2
	CollideConnected bool
}

type body struct {
	def     physics.BodyDef
	pos     mgl64.Vec2
	vel     mgl64.Vec2
	angle   float64
	omega   float64
	torque  float64
	inertia float64
}

// World is a fake physics.World.
type World struct {
	// Inertia is the moment used for dynamic bodies. Defaults to 1.
	Inertia float64
	// JointErr, when set, makes CreateRevoluteJoint fail with it.
	JointErr error

	Torques []TorqueCall

	bodies    map[physics.BodyID]*body
	order     []physics.BodyID
	joints    map[physics.JointID]Joint
	contacts  *physics.ContactTracker
	nextBody  physics.BodyID
	nextJoint physics.JointID
	created   int
	destroyed int
}

var _ physics.World = (*World)(nil)

func New() *World {
	return &World{
		Inertia:  1,
		bodies:   make(map[physics.BodyID]*body),
		joints:   make(map[physics.JointID]Joint),
		contacts: physics.NewContactTracker(),
	}
}

func (w *World) CreateBody(def physics.BodyDef) physics.BodyID {
	w.nextBody++
	id := w.nextBody
	w.bodies[id] = &body{def: def, pos: def.Position, angle: def.Angle, inertia: w.Inertia}
	w.order = append(w.order, id)
	return id
}

func (w *World) AddSensor(id physics.BodyID, def physics.SensorDef) error {
	if _, ok := w.bodies[id]; !ok {
		return fmt.Errorf("add sensor %q: %w", def.Tag, physics.ErrUnknownBody)
	}
	return nil
}

// Step integrates accumulated torque with semi-implicit Euler and moves
// bodies along their linear velocity.
func (w *World) Step(dt float64) {
	for _, id := range w.order {
		b := w.bodies[id]
		if b.def.Kind == physics.Static {
			continue
		}
		b.pos = b.pos.Add(b.vel.Mul(dt))
		if b.def.Kind == physics.Kinematic {
			b.angle += b.omega * dt
			continue
		}
		b.omega += b.torque / b.inertia * dt
		b.angle += b.omega * dt
		b.torque = 0
	}
}

func (w *World) BodyAngle(id physics.BodyID) float64 {
	if b, ok := w.bodies[id]; ok {
		return b.angle
	}
	return 0
}

func (w *World) BodyAngularVelocity(id physics.BodyID) float64 {
	if b, ok := w.bodies[id]; ok {
		return b.omega
	}
	return 0
}

func (w *World) BodyPosition(id physics.BodyID) mgl64.Vec2 {
	if b, ok := w.bodies[id]; ok {
		return b.pos
	}
	return mgl64.Vec2{}
}

func (w *World) ApplyTorque(id physics.BodyID, torque float64, wake bool) {
	w.Torques = append(w.Torques, TorqueCall{Body: id, Torque: torque, Wake: wake})
	if b, ok := w.bodies[id]; ok {
		b.torque += torque
	}
}

func (w *World) CreateRevoluteJoint(a, b physics.BodyID, anchorA, anchorB mgl64.Vec2, collideConnected bool) (physics.JointID, error) {
	if w.JointErr != nil {
		return 0, w.JointErr
	}
	if _, ok := w.bodies[a]; !ok {
		return 0, physics.ErrUnknownBody
	}
	if _, ok := w.bodies[b]; !ok {
		return 0, physics.ErrUnknownBody
	}
	if a == b {
		return 0, physics.ErrSameBody
	}
	w.nextJoint++
	w.joints[w.nextJoint] = Joint{A: a, B: b, AnchorA: anchorA, AnchorB: anchorB, CollideConnected: collideConnected}
	w.created++
	return w.nextJoint, nil
}

func (w *World) DestroyJoint(id physics.JointID) {
	if _, ok := w.joints[id]; !ok {
		return
	}
	delete(w.joints, id)
	w.destroyed++
}

func (w *World) ContactTarget(sensorTag string, exclude physics.BodySet) (physics.BodyID, bool) {
	return w.contacts.Target(sensorTag, exclude)
}

func (w *World) SetBodyTransform(id physics.BodyID, pos mgl64.Vec2, angle float64) {
	if b, ok := w.bodies[id]; ok {
		b.pos = pos
		b.angle = angle
	}
}

func (w *World) SetBodyVelocity(id physics.BodyID, linear mgl64.Vec2, angular float64) {
	if b, ok := w.bodies[id]; ok && b.def.Kind != physics.Static {
		b.vel = linear
		b.omega = angular
	}
}

func (w *World) Body(id physics.BodyID) (physics.BodyInfo, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return physics.BodyInfo{}, false
	}
	return physics.BodyInfo{ID: id, Def: b.def, Position: b.pos, Angle: b.angle}, true
}

func (w *World) Bodies() []physics.BodyID {
	return append([]physics.BodyID(nil), w.order...)
}

func (w *World) Joints() []physics.JointInfo {
	ids := make([]physics.JointID, 0, len(w.joints))
	for id := range w.joints {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	infos := make([]physics.JointInfo, 0, len(ids))
	for _, id := range ids {
		j := w.joints[id]
		infos = append(infos, physics.JointInfo{
			ID:      id,
			AnchorA: w.BodyPosition(j.A).Add(j.AnchorA),
			AnchorB: w.BodyPosition(j.B).Add(j.AnchorB),
		})
	}
	return infos
}

func (w *World) Close() {}

// Touch starts a contact between the sensor tagged tag and body.
func (w *World) Touch(tag string, body physics.BodyID) {
	w.contacts.Begin(tag, body)
}

// Separate ends a contact started by Touch.
func (w *World) Separate(tag string, body physics.BodyID) {
	w.contacts.End(tag, body)
}

// SetAngle overrides a body's rotation and spin.
func (w *World) SetAngle(id physics.BodyID, angle, omega float64) {
	if b, ok := w.bodies[id]; ok {
		b.angle = angle
		b.omega = omega
	}
}

// Joint returns a live joint.
func (w *World) Joint(id physics.JointID) (Joint, bool) {
	j, ok := w.joints[id]
	return j, ok
}

// JointCount is the number of live joints.
func (w *World) JointCount() int {
	return len(w.joints)
}

// JointsCreated and JointsDestroyed count lifetime calls that succeeded.
func (w *World) JointsCreated() int   { return w.created }
func (w *World) JointsDestroyed() int { return w.destroyed }

// Package cpworld implements physics.World on top of the Chipmunk2D port from
// github.com/jakecoffman/cp.
package cpworld

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp/v2"
	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/physics"
)

// sensorCollision is the collision type carried by every tagged sensor shape.
const sensorCollision cp.CollisionType = 1

type entry struct {
	body *cp.Body
	def  physics.BodyDef
}

type joint struct {
	constraint       *cp.Constraint
	a, b             *cp.Body
	anchorA, anchorB mgl64.Vec2
}

// World wraps a Chipmunk space and hands out stable ids for its bodies and
// joints.
type World struct {
	space *cp.Space
	log   logrus.FieldLogger

	bodies  map[physics.BodyID]*entry
	order   []physics.BodyID
	ids     map[*cp.Body]physics.BodyID
	sensors map[*cp.Shape]string
	joints  map[physics.JointID]*joint

	contacts  *physics.ContactTracker
	nextBody  physics.BodyID
	nextJoint physics.JointID
	stepping  bool
}

var _ physics.World = (*World)(nil)

// New creates an empty space with the given gravity (y up).
func New(gravity mgl64.Vec2, log logrus.FieldLogger) *World {
	w := &World{
		space:    cp.NewSpace(),
		log:      log.WithField("backend", "chipmunk"),
		bodies:   make(map[physics.BodyID]*entry),
		ids:      make(map[*cp.Body]physics.BodyID),
		sensors:  make(map[*cp.Shape]string),
		joints:   make(map[physics.JointID]*joint),
		contacts: physics.NewContactTracker(),
	}
	w.space.SetGravity(vec(gravity))

	handler := w.space.NewWildcardCollisionHandler(sensorCollision)
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		w.sensorEvent(arb, w.contacts.Begin)
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		w.sensorEvent(arb, w.contacts.End)
	}
	return w
}

func vec(v mgl64.Vec2) cp.Vector {
	return cp.Vector{X: v.X(), Y: v.Y()}
}

func fromVec(v cp.Vector) mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

func (w *World) sensorEvent(arb *cp.Arbiter, record func(tag string, body physics.BodyID)) {
	a, b := arb.Shapes()
	if tag, ok := w.sensors[a]; ok {
		if id, ok := w.ids[b.Body()]; ok {
			record(tag, id)
		}
	}
	if tag, ok := w.sensors[b]; ok {
		if id, ok := w.ids[a.Body()]; ok {
			record(tag, id)
		}
	}
}

func filter(group int) cp.ShapeFilter {
	if group < 0 {
		return cp.NewShapeFilter(uint(-group), cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
	}
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
}

// massOf returns the mass and moment of a dynamic body's shape. Bodies
// without a solid shape get a unit disc.
func massOf(def physics.BodyDef) (float64, float64) {
	var mass, moment float64
	switch def.Shape {
	case physics.Box:
		w, h := 2*def.HalfExtents.X(), 2*def.HalfExtents.Y()
		mass = def.Density * w * h
		moment = cp.MomentForBox(mass, w, h) + mass*def.Offset.LenSqr()
	case physics.Circle:
		mass = def.Density * math.Pi * def.Radius * def.Radius
		moment = cp.MomentForCircle(mass, 0, def.Radius, vec(def.Offset))
	}
	if mass <= 0 || moment <= 0 {
		return 1, cp.MomentForCircle(1, 0, 0.5, cp.Vector{})
	}
	return mass, moment
}

func (w *World) CreateBody(def physics.BodyDef) physics.BodyID {
	var body *cp.Body
	switch def.Kind {
	case physics.Dynamic:
		body = cp.NewBody(massOf(def))
		if def.AngularDamping > 0 {
			damping := def.AngularDamping
			body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, globalDamping, dt float64) {
				cp.BodyUpdateVelocity(body, gravity, globalDamping, dt)
				body.SetAngularVelocity(body.AngularVelocity() / (1 + dt*damping))
			})
		}
	case physics.Kinematic:
		body = cp.NewKinematicBody()
	default:
		body = cp.NewStaticBody()
	}
	w.space.AddBody(body)
	body.SetPosition(vec(def.Position))
	body.SetAngle(def.Angle)

	var shape *cp.Shape
	switch def.Shape {
	case physics.Box:
		hx, hy := def.HalfExtents.X(), def.HalfExtents.Y()
		ox, oy := def.Offset.X(), def.Offset.Y()
		shape = cp.NewBox2(body, cp.BB{L: ox - hx, B: oy - hy, R: ox + hx, T: oy + hy}, 0)
	case physics.Circle:
		shape = cp.NewCircle(body, def.Radius, vec(def.Offset))
	}
	if shape != nil {
		shape.SetFriction(def.Friction)
		shape.SetFilter(filter(def.Group))
		w.space.AddShape(shape)
	}

	w.nextBody++
	id := w.nextBody
	w.bodies[id] = &entry{body: body, def: def}
	w.ids[body] = id
	w.order = append(w.order, id)
	return id
}

func (w *World) AddSensor(id physics.BodyID, def physics.SensorDef) error {
	e, ok := w.bodies[id]
	if !ok {
		return fmt.Errorf("add sensor %q to body %d: %w", def.Tag, id, physics.ErrUnknownBody)
	}
	if w.stepping {
		return fmt.Errorf("add sensor %q: %w", def.Tag, physics.ErrWorldLocked)
	}
	shape := cp.NewCircle(e.body, def.Radius, vec(def.Offset))
	shape.SetSensor(true)
	shape.SetCollisionType(sensorCollision)
	shape.SetFilter(filter(e.def.Group))
	w.space.AddShape(shape)
	w.sensors[shape] = def.Tag
	return nil
}

// Step advances the space and clears accumulated torques.
func (w *World) Step(dt float64) {
	w.stepping = true
	w.space.Step(dt)
	w.stepping = false

	for _, e := range w.bodies {
		if e.def.Kind == physics.Dynamic && e.body.Torque() != 0 {
			e.body.SetTorque(0)
		}
	}
}

func (w *World) BodyAngle(id physics.BodyID) float64 {
	if e, ok := w.bodies[id]; ok {
		return e.body.Angle()
	}
	return 0
}

func (w *World) BodyAngularVelocity(id physics.BodyID) float64 {
	if e, ok := w.bodies[id]; ok {
		return e.body.AngularVelocity()
	}
	return 0
}

func (w *World) BodyPosition(id physics.BodyID) mgl64.Vec2 {
	if e, ok := w.bodies[id]; ok {
		return fromVec(e.body.Position())
	}
	return mgl64.Vec2{}
}

func (w *World) ApplyTorque(id physics.BodyID, torque float64, wake bool) {
	e, ok := w.bodies[id]
	if !ok || e.def.Kind != physics.Dynamic {
		return
	}
	if !wake && e.body.IsSleeping() {
		return
	}
	e.body.SetTorque(e.body.Torque() + torque)
}

func (w *World) CreateRevoluteJoint(a, b physics.BodyID, anchorA, anchorB mgl64.Vec2, collideConnected bool) (physics.JointID, error) {
	ea, ok := w.bodies[a]
	if !ok {
		return 0, fmt.Errorf("pivot joint body %d: %w", a, physics.ErrUnknownBody)
	}
	eb, ok := w.bodies[b]
	if !ok {
		return 0, fmt.Errorf("pivot joint body %d: %w", b, physics.ErrUnknownBody)
	}
	if a == b {
		return 0, fmt.Errorf("pivot joint body %d: %w", a, physics.ErrSameBody)
	}
	if w.stepping {
		return 0, fmt.Errorf("pivot joint %d-%d: %w", a, b, physics.ErrWorldLocked)
	}

	constraint := cp.NewPivotJoint2(ea.body, eb.body, vec(anchorA), vec(anchorB))
	constraint.SetCollideBodies(collideConnected)
	w.space.AddConstraint(constraint)

	w.nextJoint++
	w.joints[w.nextJoint] = &joint{
		constraint: constraint,
		a:          ea.body,
		b:          eb.body,
		anchorA:    anchorA,
		anchorB:    anchorB,
	}
	w.log.WithFields(logrus.Fields{"joint": w.nextJoint, "a": ea.def.Name, "b": eb.def.Name}).Debug("pivot joint created")
	return w.nextJoint, nil
}

func (w *World) DestroyJoint(id physics.JointID) {
	j, ok := w.joints[id]
	if !ok {
		return
	}
	w.space.RemoveConstraint(j.constraint)
	j.a.Activate()
	j.b.Activate()
	delete(w.joints, id)
	w.log.WithField("joint", id).Debug("joint destroyed")
}

func (w *World) ContactTarget(sensorTag string, exclude physics.BodySet) (physics.BodyID, bool) {
	return w.contacts.Target(sensorTag, exclude)
}

func (w *World) SetBodyTransform(id physics.BodyID, pos mgl64.Vec2, angle float64) {
	e, ok := w.bodies[id]
	if !ok {
		return
	}
	e.body.SetPosition(vec(pos))
	e.body.SetAngle(angle)
	if e.def.Kind == physics.Static {
		e.body.EachShape(func(s *cp.Shape) {
			w.space.ReindexShape(s)
		})
	}
}

func (w *World) SetBodyVelocity(id physics.BodyID, linear mgl64.Vec2, angular float64) {
	e, ok := w.bodies[id]
	if !ok || e.def.Kind == physics.Static {
		return
	}
	e.body.SetVelocityVector(vec(linear))
	e.body.SetAngularVelocity(angular)
}

func (w *World) Body(id physics.BodyID) (physics.BodyInfo, bool) {
	e, ok := w.bodies[id]
	if !ok {
		return physics.BodyInfo{}, false
	}
	return physics.BodyInfo{
		ID:       id,
		Def:      e.def,
		Position: fromVec(e.body.Position()),
		Angle:    e.body.Angle(),
	}, true
}

func (w *World) Bodies() []physics.BodyID {
	return slices.Clone(w.order)
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
			AnchorA: toWorld(j.a, j.anchorA),
			AnchorB: toWorld(j.b, j.anchorB),
		})
	}
	return infos
}

func toWorld(body *cp.Body, local mgl64.Vec2) mgl64.Vec2 {
	rot := mgl64.Rotate2D(body.Angle())
	return fromVec(body.Position()).Add(rot.Mul2x1(local))
}

// Close drops every body and joint. The space itself is left to the garbage
// collector.
func (w *World) Close() {
	for _, j := range w.joints {
		w.space.RemoveConstraint(j.constraint)
	}
	clear(w.bodies)
	clear(w.ids)
	clear(w.sensors)
	clear(w.joints)
	w.order = nil
	w.contacts.Reset()
}

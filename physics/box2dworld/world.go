// Package box2dworld implements physics.World on top of the Box2D port from
// github.com/ByteArena/box2d.
package box2dworld

import (
	"fmt"
	"slices"

	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/physics"
)

const (
	defaultVelocityIterations = 8
	defaultPositionIterations = 3
)

type entry struct {
	body *box2d.B2Body
	def  physics.BodyDef
}

// jointEntry keeps the local anchors a joint was created with, so world
// anchors can be read back without knowing the concrete joint type.
type jointEntry struct {
	joint            box2d.B2JointInterface
	bodyA, bodyB     *box2d.B2Body
	anchorA, anchorB box2d.B2Vec2
}

// World wraps a Box2D world and hands out stable ids for its bodies and
// joints.
type World struct {
	VelocityIterations int
	PositionIterations int

	world *box2d.B2World
	log   logrus.FieldLogger

	bodies  map[physics.BodyID]*entry
	order   []physics.BodyID
	ids     map[*box2d.B2Body]physics.BodyID
	sensors map[*box2d.B2Fixture]string
	joints  map[physics.JointID]*jointEntry

	contacts  *physics.ContactTracker
	nextBody  physics.BodyID
	nextJoint physics.JointID
}

var _ physics.World = (*World)(nil)

// New creates an empty world with the given gravity (y up).
func New(gravity mgl64.Vec2, log logrus.FieldLogger) *World {
	b2 := box2d.MakeB2World(vec(gravity))
	w := &World{
		VelocityIterations: defaultVelocityIterations,
		PositionIterations: defaultPositionIterations,
		world:              &b2,
		log:                log.WithField("backend", "box2d"),
		bodies:             make(map[physics.BodyID]*entry),
		ids:                make(map[*box2d.B2Body]physics.BodyID),
		sensors:            make(map[*box2d.B2Fixture]string),
		joints:             make(map[physics.JointID]*jointEntry),
		contacts:           physics.NewContactTracker(),
	}
	w.world.SetContactListener(&contactListener{w: w})
	return w
}

func vec(v mgl64.Vec2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X(), v.Y())
}

func fromVec(v box2d.B2Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

func bodyType(kind physics.BodyKind) uint8 {
	switch kind {
	case physics.Dynamic:
		return box2d.B2BodyType.B2_dynamicBody
	case physics.Kinematic:
		return box2d.B2BodyType.B2_kinematicBody
	}
	return box2d.B2BodyType.B2_staticBody
}

func (w *World) CreateBody(def physics.BodyDef) physics.BodyID {
	bd := box2d.MakeB2BodyDef()
	bd.Type = bodyType(def.Kind)
	bd.Position = vec(def.Position)
	bd.Angle = def.Angle
	bd.AngularDamping = def.AngularDamping
	body := w.world.CreateBody(&bd)

	switch def.Shape {
	case physics.Box:
		shape := box2d.MakeB2PolygonShape()
		shape.SetAsBoxFromCenterAndAngle(def.HalfExtents.X(), def.HalfExtents.Y(), vec(def.Offset), 0)
		w.addFixture(body, &shape, def)
	case physics.Circle:
		shape := box2d.MakeB2CircleShape()
		shape.M_radius = def.Radius
		shape.M_p = vec(def.Offset)
		w.addFixture(body, &shape, def)
	}

	w.nextBody++
	id := w.nextBody
	w.bodies[id] = &entry{body: body, def: def}
	w.ids[body] = id
	w.order = append(w.order, id)
	return id
}

func (w *World) addFixture(body *box2d.B2Body, shape box2d.B2ShapeInterface, def physics.BodyDef) {
	fd := box2d.MakeB2FixtureDef()
	fd.Shape = shape
	fd.Density = def.Density
	fd.Friction = def.Friction
	fd.Filter.GroupIndex = int16(def.Group)
	body.CreateFixtureFromDef(&fd)
}

func (w *World) AddSensor(id physics.BodyID, def physics.SensorDef) error {
	e, ok := w.bodies[id]
	if !ok {
		return fmt.Errorf("add sensor %q to body %d: %w", def.Tag, id, physics.ErrUnknownBody)
	}
	if w.world.IsLocked() {
		return fmt.Errorf("add sensor %q: %w", def.Tag, physics.ErrWorldLocked)
	}
	shape := box2d.MakeB2CircleShape()
	shape.M_radius = def.Radius
	shape.M_p = vec(def.Offset)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.IsSensor = true
	fd.Filter.GroupIndex = int16(e.def.Group)
	fixture := e.body.CreateFixtureFromDef(&fd)
	w.sensors[fixture] = def.Tag
	return nil
}

func (w *World) Step(dt float64) {
	w.world.Step(dt, w.VelocityIterations, w.PositionIterations)
}

func (w *World) BodyAngle(id physics.BodyID) float64 {
	if e, ok := w.bodies[id]; ok {
		return e.body.GetAngle()
	}
	return 0
}

func (w *World) BodyAngularVelocity(id physics.BodyID) float64 {
	if e, ok := w.bodies[id]; ok {
		return e.body.GetAngularVelocity()
	}
	return 0
}

func (w *World) BodyPosition(id physics.BodyID) mgl64.Vec2 {
	if e, ok := w.bodies[id]; ok {
		return fromVec(e.body.GetPosition())
	}
	return mgl64.Vec2{}
}

func (w *World) ApplyTorque(id physics.BodyID, torque float64, wake bool) {
	if e, ok := w.bodies[id]; ok {
		e.body.ApplyTorque(torque, wake)
	}
}

func (w *World) CreateRevoluteJoint(a, b physics.BodyID, anchorA, anchorB mgl64.Vec2, collideConnected bool) (physics.JointID, error) {
	ea, ok := w.bodies[a]
	if !ok {
		return 0, fmt.Errorf("revolute joint body %d: %w", a, physics.ErrUnknownBody)
	}
	eb, ok := w.bodies[b]
	if !ok {
		return 0, fmt.Errorf("revolute joint body %d: %w", b, physics.ErrUnknownBody)
	}
	if a == b {
		return 0, fmt.Errorf("revolute joint body %d: %w", a, physics.ErrSameBody)
	}
	if w.world.IsLocked() {
		return 0, fmt.Errorf("revolute joint %d-%d: %w", a, b, physics.ErrWorldLocked)
	}

	def := box2d.MakeB2RevoluteJointDef()
	def.BodyA = ea.body
	def.BodyB = eb.body
	def.LocalAnchorA = vec(anchorA)
	def.LocalAnchorB = vec(anchorB)
	def.CollideConnected = collideConnected

	joint := w.world.CreateJoint(&def)
	if joint == nil {
		return 0, fmt.Errorf("revolute joint %d-%d: %w", a, b, physics.ErrWorldLocked)
	}
	w.nextJoint++
	w.joints[w.nextJoint] = &jointEntry{
		joint:   joint,
		bodyA:   ea.body,
		bodyB:   eb.body,
		anchorA: def.LocalAnchorA,
		anchorB: def.LocalAnchorB,
	}
	w.log.WithFields(logrus.Fields{"joint": w.nextJoint, "a": ea.def.Name, "b": eb.def.Name}).Debug("revolute joint created")
	return w.nextJoint, nil
}

func (w *World) DestroyJoint(id physics.JointID) {
	j, ok := w.joints[id]
	if !ok {
		return
	}
	w.world.DestroyJoint(j.joint)
	delete(w.joints, id)
	w.log.WithField("joint", id).Debug("joint destroyed")
}

// ContactTarget returns the earliest body still touching the sensor. Box2D
// drops the contact between a hand and the body it was jointed to, and only
// finds the pair again once the hand moves out of its fattened AABB, so a
// body the sensor overlaps without a live contact is still a target. Those
// come after tracked contacts, lowest id first.
func (w *World) ContactTarget(sensorTag string, exclude physics.BodySet) (physics.BodyID, bool) {
	if id, ok := w.contacts.Target(sensorTag, exclude); ok {
		return id, true
	}
	return w.overlapTarget(sensorTag, exclude)
}

func (w *World) overlapTarget(tag string, exclude physics.BodySet) (physics.BodyID, bool) {
	best := physics.NoBody
	for sensor, t := range w.sensors {
		if t != tag {
			continue
		}
		w.world.QueryAABB(func(f *box2d.B2Fixture) bool {
			id, ok := w.ids[f.GetBody()]
			if !ok || exclude.Has(id) {
				return true
			}
			if best != physics.NoBody && id >= best {
				return true
			}
			if overlaps(sensor, f) {
				best = id
			}
			return true
		}, sensor.GetAABB(0))
	}
	return best, best != physics.NoBody
}

// overlaps applies the same filtering Box2D uses before it creates a contact,
// then tests the two shapes.
func overlaps(sensor, f *box2d.B2Fixture) bool {
	a, b := sensor.GetBody(), f.GetBody()
	if a == b || !b.ShouldCollide(a) {
		return false
	}
	var filter box2d.B2ContactFilter
	if !filter.ShouldCollide(sensor, f) {
		return false
	}
	return box2d.B2TestOverlapShapes(sensor.GetShape(), 0, f.GetShape(), 0, a.GetTransform(), b.GetTransform())
}

func (w *World) SetBodyTransform(id physics.BodyID, pos mgl64.Vec2, angle float64) {
	if e, ok := w.bodies[id]; ok {
		e.body.SetTransform(vec(pos), angle)
	}
}

func (w *World) SetBodyVelocity(id physics.BodyID, linear mgl64.Vec2, angular float64) {
	if e, ok := w.bodies[id]; ok {
		e.body.SetLinearVelocity(vec(linear))
		e.body.SetAngularVelocity(angular)
	}
}

func (w *World) Body(id physics.BodyID) (physics.BodyInfo, bool) {
	e, ok := w.bodies[id]
	if !ok {
		return physics.BodyInfo{}, false
	}
	return physics.BodyInfo{
		ID:       id,
		Def:      e.def,
		Position: fromVec(e.body.GetPosition()),
		Angle:    e.body.GetAngle(),
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
			AnchorA: fromVec(j.bodyA.GetWorldPoint(j.anchorA)),
			AnchorB: fromVec(j.bodyB.GetWorldPoint(j.anchorB)),
		})
	}
	return infos
}

// Close destroys every body and joint in the world.
func (w *World) Close() {
	w.world.Destroy()
	clear(w.bodies)
	clear(w.ids)
	clear(w.sensors)
	clear(w.joints)
	w.order = nil
	w.contacts.Reset()
}

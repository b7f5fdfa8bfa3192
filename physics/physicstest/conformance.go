package physicstest

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/slothgame/sloth/physics"
)

const conformanceDT = 1.0 / 60

// TestWorld runs the behaviour every engine-backed physics.World must share.
// newWorld must return an empty world with zero gravity.
func TestWorld(t *testing.T, newWorld func() physics.World) {
	t.Run("SensorFindsTouchingBody", func(t *testing.T) { testSensorContact(t, newWorld()) })
	t.Run("AddSensorUnknownBody", func(t *testing.T) { testAddSensorUnknownBody(t, newWorld()) })
	t.Run("ApplyTorqueSpinsBody", func(t *testing.T) { testApplyTorque(t, newWorld()) })
	t.Run("RevoluteJointLifecycle", func(t *testing.T) { testJointLifecycle(t, newWorld()) })
	t.Run("ContactSurvivesJointRelease", func(t *testing.T) { testContactAfterRelease(t, newWorld()) })
	t.Run("RevoluteJointErrors", func(t *testing.T) { testJointErrors(t, newWorld()) })
	t.Run("BodiesKeepCreationOrder", func(t *testing.T) { testBodyOrder(t, newWorld()) })
	t.Run("SetBodyTransform", func(t *testing.T) { testSetBodyTransform(t, newWorld()) })
	t.Run("KinematicVelocity", func(t *testing.T) { testKinematicVelocity(t, newWorld()) })
}

func boxDef(name string, kind physics.BodyKind, pos mgl64.Vec2) physics.BodyDef {
	return physics.BodyDef{
		Name:        name,
		Kind:        kind,
		Position:    pos,
		Shape:       physics.Box,
		HalfExtents: mgl64.Vec2{0.5, 0.5},
		Density:     1,
	}
}

func testSensorContact(t *testing.T, w physics.World) {
	defer w.Close()

	bar := w.CreateBody(physics.BodyDef{
		Name:        "bar",
		Kind:        physics.Static,
		Shape:       physics.Box,
		HalfExtents: mgl64.Vec2{1, 1},
	})
	hand := w.CreateBody(physics.BodyDef{Name: "hand", Kind: physics.Dynamic, Position: mgl64.Vec2{0, 0.5}})
	if err := w.AddSensor(hand, physics.SensorDef{Tag: "hand", Radius: 0.25}); err != nil {
		t.Fatalf("AddSensor: %v", err)
	}

	w.Step(conformanceDT)

	got, ok := w.ContactTarget("hand", physics.NewBodySet(hand))
	if !ok || got != bar {
		t.Fatalf("ContactTarget = %d, %v; want %d, true", got, ok, bar)
	}
	if _, ok := w.ContactTarget("hand", physics.NewBodySet(hand, bar)); ok {
		t.Fatalf("excluded body was returned")
	}
	if _, ok := w.ContactTarget("other hand", nil); ok {
		t.Fatalf("contact reported under the wrong tag")
	}

	w.SetBodyTransform(hand, mgl64.Vec2{50, 50}, 0)
	w.Step(conformanceDT)
	if got, ok := w.ContactTarget("hand", nil); ok {
		t.Fatalf("contact with %d survived separation", got)
	}
}

func testAddSensorUnknownBody(t *testing.T, w physics.World) {
	defer w.Close()

	err := w.AddSensor(42, physics.SensorDef{Tag: "hand", Radius: 1})
	if !errors.Is(err, physics.ErrUnknownBody) {
		t.Fatalf("AddSensor error = %v; want ErrUnknownBody", err)
	}
}

func testApplyTorque(t *testing.T, w physics.World) {
	defer w.Close()

	id := w.CreateBody(boxDef("arm", physics.Dynamic, mgl64.Vec2{}))
	for i := 0; i < 10; i++ {
		w.ApplyTorque(id, 1, true)
		w.Step(conformanceDT)
	}
	if w.BodyAngularVelocity(id) <= 0 {
		t.Fatalf("angular velocity = %v; want > 0", w.BodyAngularVelocity(id))
	}
	if w.BodyAngle(id) <= 0 {
		t.Fatalf("angle = %v; want > 0", w.BodyAngle(id))
	}
}

func testJointLifecycle(t *testing.T, w physics.World) {
	defer w.Close()

	a := w.CreateBody(boxDef("a", physics.Dynamic, mgl64.Vec2{0, 0}))
	b := w.CreateBody(boxDef("b", physics.Static, mgl64.Vec2{2, 0}))

	id, err := w.CreateRevoluteJoint(a, b, mgl64.Vec2{}, mgl64.Vec2{}, false)
	if err != nil {
		t.Fatalf("CreateRevoluteJoint: %v", err)
	}
	joints := w.Joints()
	if len(joints) != 1 || joints[0].ID != id {
		t.Fatalf("Joints() = %+v; want one joint %d", joints, id)
	}
	if !joints[0].AnchorA.ApproxEqual(mgl64.Vec2{0, 0}) {
		t.Fatalf("anchor A = %v; want origin", joints[0].AnchorA)
	}
	if !joints[0].AnchorB.ApproxEqual(mgl64.Vec2{2, 0}) {
		t.Fatalf("anchor B = %v; want (2, 0)", joints[0].AnchorB)
	}

	w.DestroyJoint(id)
	if n := len(w.Joints()); n != 0 {
		t.Fatalf("%d joints left after destroy", n)
	}
	w.DestroyJoint(id)
}

func testContactAfterRelease(t *testing.T, w physics.World) {
	defer w.Close()

	bar := w.CreateBody(physics.BodyDef{
		Name:        "bar",
		Kind:        physics.Static,
		Shape:       physics.Box,
		HalfExtents: mgl64.Vec2{1, 0.1},
	})
	hand := w.CreateBody(physics.BodyDef{Name: "hand", Kind: physics.Dynamic, Position: mgl64.Vec2{0, 0.15}})
	if err := w.AddSensor(hand, physics.SensorDef{Tag: "hand", Radius: 0.2}); err != nil {
		t.Fatalf("AddSensor: %v", err)
	}
	w.Step(conformanceDT)

	joint, err := w.CreateRevoluteJoint(hand, bar, mgl64.Vec2{}, mgl64.Vec2{}, false)
	if err != nil {
		t.Fatalf("CreateRevoluteJoint: %v", err)
	}
	for i := 0; i < 30; i++ {
		w.Step(conformanceDT)
	}
	w.DestroyJoint(joint)
	w.Step(conformanceDT)

	got, ok := w.ContactTarget("hand", physics.NewBodySet(hand))
	if !ok || got != bar {
		t.Fatalf("after release ContactTarget = %d, %v; want %d, true", got, ok, bar)
	}
}

func testJointErrors(t *testing.T, w physics.World) {
	defer w.Close()

	a := w.CreateBody(boxDef("a", physics.Dynamic, mgl64.Vec2{}))

	tests := []struct {
		name string
		a, b physics.BodyID
		want error
	}{
		{"unknown first", 99, a, physics.ErrUnknownBody},
		{"unknown second", a, 99, physics.ErrUnknownBody},
		{"same body", a, a, physics.ErrSameBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.CreateRevoluteJoint(tt.a, tt.b, mgl64.Vec2{}, mgl64.Vec2{}, false)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v; want %v", err, tt.want)
			}
		})
	}
}

func testBodyOrder(t *testing.T, w physics.World) {
	defer w.Close()

	first := w.CreateBody(boxDef("first", physics.Static, mgl64.Vec2{}))
	second := w.CreateBody(boxDef("second", physics.Dynamic, mgl64.Vec2{3, 4}))

	ids := w.Bodies()
	if len(ids) != 2 || ids[0] != first || ids[1] != second {
		t.Fatalf("Bodies() = %v; want [%d %d]", ids, first, second)
	}
	info, ok := w.Body(second)
	if !ok {
		t.Fatalf("Body(%d) not found", second)
	}
	if info.Def.Name != "second" || !info.Position.ApproxEqual(mgl64.Vec2{3, 4}) {
		t.Fatalf("Body(%d) = %+v", second, info)
	}
	if _, ok := w.Body(physics.NoBody); ok {
		t.Fatalf("Body(NoBody) reported a body")
	}
}

func testSetBodyTransform(t *testing.T, w physics.World) {
	defer w.Close()

	anchor := w.CreateBody(physics.BodyDef{Name: "anchor", Kind: physics.Static, Position: mgl64.Vec2{-100, -100}})
	w.SetBodyTransform(anchor, mgl64.Vec2{1, 2}, 0)
	if got := w.BodyPosition(anchor); !got.ApproxEqual(mgl64.Vec2{1, 2}) {
		t.Fatalf("BodyPosition = %v; want (1, 2)", got)
	}
}

func testKinematicVelocity(t *testing.T, w physics.World) {
	defer w.Close()

	bar := w.CreateBody(boxDef("bar", physics.Kinematic, mgl64.Vec2{}))
	w.SetBodyVelocity(bar, mgl64.Vec2{1, 0}, 0)
	for i := 0; i < 60; i++ {
		w.Step(conformanceDT)
	}
	if got := w.BodyPosition(bar); math.Abs(got.X()-1) > 1e-3 || math.Abs(got.Y()) > 1e-3 {
		t.Fatalf("kinematic bar at %v after one second; want (1, 0)", got)
	}
}

package box2dworld

import (
	"io"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/physics"
	"github.com/slothgame/sloth/physics/physicstest"
)

func newTestWorld() *World {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(mgl64.Vec2{}, log)
}

func TestWorld(t *testing.T) {
	physicstest.TestWorld(t, func() physics.World { return newTestWorld() })
}

func TestCloseForgetsEverything(t *testing.T) {
	w := newTestWorld()
	w.CreateBody(physics.BodyDef{Name: "a", Kind: physics.Static})
	w.Close()

	if n := len(w.Bodies()); n != 0 {
		t.Fatalf("%d bodies left after Close", n)
	}
}

func TestIterationDefaults(t *testing.T) {
	w := newTestWorld()
	defer w.Close()

	if w.VelocityIterations != 8 || w.PositionIterations != 3 {
		t.Fatalf("iterations = %d/%d; want 8/3", w.VelocityIterations, w.PositionIterations)
	}
}

func TestReleasedJointKeepsOverlappingTarget(t *testing.T) {
	w := newTestWorld()
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
	w.Step(1.0 / 60)

	joint, err := w.CreateRevoluteJoint(hand, bar, mgl64.Vec2{}, mgl64.Vec2{}, false)
	if err != nil {
		t.Fatalf("CreateRevoluteJoint: %v", err)
	}
	for i := 0; i < 10; i++ {
		w.Step(1.0 / 60)
	}
	// The joint filters the pair, so Box2D has ended the contact.
	if got, ok := w.contacts.Target("hand", nil); ok {
		t.Fatalf("tracker still holds %d while jointed", got)
	}

	w.DestroyJoint(joint)
	got, ok := w.ContactTarget("hand", physics.NewBodySet(hand))
	if !ok || got != bar {
		t.Fatalf("ContactTarget = %d, %v; want %d, true", got, ok, bar)
	}
	if got, ok := w.ContactTarget("hand", physics.NewBodySet(hand, bar)); ok {
		t.Fatalf("excluded body %d was returned", got)
	}

	w.SetBodyTransform(hand, mgl64.Vec2{50, 50}, 0)
	if got, ok := w.ContactTarget("hand", nil); ok {
		t.Fatalf("overlap with %d reported after moving away", got)
	}
}

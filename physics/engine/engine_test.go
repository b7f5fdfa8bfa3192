package engine

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/physics/box2dworld"
	"github.com/slothgame/sloth/physics/cpworld"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNewPicksEngine(t *testing.T) {
	w, err := New(Box2D, Options{VelocityIterations: 12}, quietLogger())
	if err != nil {
		t.Fatalf("New(box2d): %v", err)
	}
	b2, ok := w.(*box2dworld.World)
	if !ok {
		t.Fatalf("expected a box2d world, got %T", w)
	}
	if b2.VelocityIterations != 12 || b2.PositionIterations != 3 {
		t.Fatalf("unexpected iterations %d/%d", b2.VelocityIterations, b2.PositionIterations)
	}
	w.Close()

	w, err = New(Chipmunk, Options{}, quietLogger())
	if err != nil {
		t.Fatalf("New(chipmunk): %v", err)
	}
	if _, ok := w.(*cpworld.World); !ok {
		t.Fatalf("expected a chipmunk world, got %T", w)
	}
	w.Close()
}

func TestNewUnknownEngine(t *testing.T) {
	if _, err := New("havok", Options{}, quietLogger()); !errors.Is(err, ErrUnknownEngine) {
		t.Fatalf("expected ErrUnknownEngine, got %v", err)
	}
}

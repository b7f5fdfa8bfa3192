package cpworld

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

func TestMassOf(t *testing.T) {
	tests := []struct {
		name string
		def  physics.BodyDef
		mass float64
	}{
		{"box", physics.BodyDef{Shape: physics.Box, HalfExtents: mgl64.Vec2{1, 0.5}, Density: 2}, 4},
		{"no shape", physics.BodyDef{}, 1},
		{"zero density", physics.BodyDef{Shape: physics.Circle, Radius: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mass, moment := massOf(tt.def)
			if mass != tt.mass {
				t.Fatalf("mass = %v; want %v", mass, tt.mass)
			}
			if moment <= 0 {
				t.Fatalf("moment = %v; want > 0", moment)
			}
		})
	}
}

func TestNegativeGroupSharesFilter(t *testing.T) {
	a, b := filter(-3), filter(-3)
	if a != b {
		t.Fatalf("filters differ for the same group: %+v vs %+v", a, b)
	}
	if filter(0) == a {
		t.Fatalf("ungrouped filter matches group -3")
	}
}

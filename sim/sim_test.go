package sim

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/level"
	"github.com/slothgame/sloth/physics"
	"github.com/slothgame/sloth/physics/engine"
	"github.com/slothgame/sloth/physics/physicstest"
	"github.com/slothgame/sloth/ragdoll"
)

const dt = 1.0 / 60

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func demoOptions(script Script) Options {
	return Options{
		Sloth:    ragdoll.DefaultConfig(),
		Skeleton: ragdoll.DefaultSkeleton(),
		Level:    level.Demo(),
		DT:       dt,
		Script:   script,
	}
}

func TestNewWithoutScript(t *testing.T) {
	if _, err := New(physicstest.New(), Options{DT: dt}, quietLogger()); err == nil {
		t.Fatalf("expected an error without a script")
	}
}

func TestRunCountsTicksAndTorque(t *testing.T) {
	s, err := New(physicstest.New(), demoOptions(Reach), quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	stats, err := s.Run(context.Background(), 90)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Ticks != 90 {
		t.Fatalf("expected 90 ticks, got %d", stats.Ticks)
	}
	if stats.MaxTorque <= 0 {
		t.Fatalf("reaching up should drive the arms, max torque %v", stats.MaxTorque)
	}
	// The fake world reports no contacts, so nothing can be grabbed.
	if stats.LeftGrabs != 0 || stats.RightGrabs != 0 || stats.GrabErrors != 0 {
		t.Fatalf("unexpected grabs %+v", stats)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s, err := New(physicstest.New(), demoOptions(Swing), quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := s.Run(ctx, 10)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if stats.Ticks != 0 {
		t.Fatalf("expected no ticks after cancel, got %d", stats.Ticks)
	}
}

func TestSwingAlternatesHands(t *testing.T) {
	first := Swing(0, dt)
	if !first.LeftGrab || first.RightGrab {
		t.Fatalf("swing should start on the left hand, got %+v", first)
	}
	later := Swing(90, dt)
	if later.LeftGrab || !later.RightGrab {
		t.Fatalf("swing should hold with the right hand after a second, got %+v", later)
	}
	if l := later.Left.Len(); l < 0.999 || l > 1.001 {
		t.Fatalf("swing stick should be full deflection, got %v", l)
	}
}

// TestReachHangsFromDemoBar spawns the demo sloth under gravity with both
// hands against the first bar and checks it is still hanging after two
// seconds.
func TestReachHangsFromDemoBar(t *testing.T) {
	for _, name := range engine.Names() {
		t.Run(name, func(t *testing.T) {
			opts := demoOptions(Reach)
			w, err := engine.New(name, engine.Options{Gravity: mgl64.Vec2{0, -10}}, quietLogger())
			if err != nil {
				t.Fatalf("engine.New: %v", err)
			}
			defer w.Close()

			s, err := New(w, opts, quietLogger())
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			stats, err := s.Run(context.Background(), 120)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}

			if stats.LeftGrabs == 0 || stats.RightGrabs == 0 {
				t.Fatalf("both hands should have grabbed, got %+v", stats)
			}
			if stats.GrabErrors != 0 {
				t.Fatalf("unexpected grab errors %+v", stats)
			}
			if y := stats.Torso.Y(); y < 2 {
				t.Fatalf("sloth fell, torso at y=%v", y)
			}
			for _, side := range []ragdoll.Side{ragdoll.Left, ragdoll.Right} {
				if target, ok := s.Sloth.Hand(side).Target(); !ok || target == physics.NoBody {
					t.Fatalf("%s hand is not holding anything", side)
				}
			}
		})
	}
}

package ragdoll

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/slothgame/sloth/physics"
)

const tickDT = 1.0 / 60

func newTestSloth(r *rig, grab GrabConfig) (*Sloth, *logtest.Hook) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	cfg := Config{Arm: unitTuning, Grab: grab}
	return New(r.world, r.parts, cfg, log), hook
}

// torquesOn returns the torques applied to body since the last reset of calls.
func torquesOn(r *rig, body physics.BodyID) []float64 {
	var out []float64
	for _, call := range r.world.Torques {
		if call.Body == body {
			out = append(out, call.Torque)
		}
	}
	return out
}

func TestTickAppliesTorqueToBothArms(t *testing.T) {
	r := newRig()
	s, _ := newTestSloth(r, GrabConfig{GrabbingHandCanRotate: true})

	report := s.Tick(tickDT, Input{Left: mgl64.Vec2{0, 1}, Right: mgl64.Vec2{0, -1}})

	if report.DT != tickDT {
		t.Fatalf("report dt = %v; want %v", report.DT, tickDT)
	}
	left, right := torquesOn(r, r.parts.LeftArm), torquesOn(r, r.parts.RightArm)
	if len(left) != 1 || left[0] != report.Left.Torque {
		t.Fatalf("left arm torques = %v; want [%v]", left, report.Left.Torque)
	}
	if len(right) != 1 || right[0] != report.Right.Torque {
		t.Fatalf("right arm torques = %v; want [%v]", right, report.Right.Torque)
	}
	for _, call := range r.world.Torques {
		if !call.Wake {
			t.Fatalf("torque applied without waking body %d", call.Body)
		}
	}
}

func TestSuppressionUsesGrabStateFromStartOfTick(t *testing.T) {
	r := newRig()
	s, _ := newTestSloth(r, GrabConfig{GrabbingHandCanRotate: false})
	r.world.Touch(leftTag, r.barA)
	stick := mgl64.Vec2{0, 1}

	steps := []struct {
		grab       bool
		suppressed bool
		state      GrabState
	}{
		{grab: true, suppressed: false, state: Grabbing},
		{grab: true, suppressed: true, state: Grabbing},
		{grab: false, suppressed: true, state: Released},
		{grab: false, suppressed: false, state: Released},
	}
	for i, step := range steps {
		before := len(torquesOn(r, r.parts.LeftArm))
		report := s.Tick(tickDT, Input{Left: stick, LeftGrab: step.grab})
		applied := len(torquesOn(r, r.parts.LeftArm)) - before

		if report.Left.Suppressed != step.suppressed {
			t.Fatalf("tick %d: suppressed = %v; want %v", i, report.Left.Suppressed, step.suppressed)
		}
		if step.suppressed && applied != 0 {
			t.Fatalf("tick %d: suppressed torque was applied", i)
		}
		if !step.suppressed && applied != 1 {
			t.Fatalf("tick %d: %d torques applied; want 1", i, applied)
		}
		if report.Left.Torque == 0 {
			t.Fatalf("tick %d: suppressed command lost its torque", i)
		}
		if report.LeftHand.State != step.state {
			t.Fatalf("tick %d: hand %v; want %v", i, report.LeftHand.State, step.state)
		}
	}
}

func TestGrabbingHandCanRotate(t *testing.T) {
	r := newRig()
	s, _ := newTestSloth(r, GrabConfig{GrabbingHandCanRotate: true})
	r.world.Touch(leftTag, r.barA)

	for i := 0; i < 3; i++ {
		report := s.Tick(tickDT, Input{Left: mgl64.Vec2{0, 1}, LeftGrab: true})
		if report.Left.Suppressed {
			t.Fatalf("tick %d: torque suppressed while rotation is allowed", i)
		}
	}
	if n := len(torquesOn(r, r.parts.LeftArm)); n != 3 {
		t.Fatalf("%d torques applied; want 3", n)
	}
}

func TestHandsAreIndependent(t *testing.T) {
	r := newRig()
	s, _ := newTestSloth(r, GrabConfig{GrabbingHandCanRotate: false})
	r.world.Touch(leftTag, r.barA)
	r.world.Touch(rightTag, r.barB)

	s.Tick(tickDT, Input{LeftGrab: true})
	report := s.Tick(tickDT, Input{Left: mgl64.Vec2{1, 0}, Right: mgl64.Vec2{0, 1}, LeftGrab: true})

	if report.LeftHand.State != Grabbing || report.LeftHand.Target != r.barA {
		t.Fatalf("left hand = %+v; want grabbing bar %d", report.LeftHand, r.barA)
	}
	if report.RightHand.State != Released {
		t.Fatalf("right hand = %v; want released", report.RightHand.State)
	}
	if report.Right.Suppressed {
		t.Fatalf("right arm suppressed by the left hand's grab")
	}
}

func TestTickReportsJointFailure(t *testing.T) {
	r := newRig()
	s, hook := newTestSloth(r, GrabConfig{})
	r.world.Touch(leftTag, r.barA)
	boom := errors.New("boom")
	r.world.JointErr = boom

	report := s.Tick(tickDT, Input{LeftGrab: true})

	if !errors.Is(report.LeftHand.Err, boom) {
		t.Fatalf("left hand error = %v; want boom", report.LeftHand.Err)
	}
	if report.LeftHand.State != Released {
		t.Fatalf("left hand = %v; want released", report.LeftHand.State)
	}
	if report.RightHand.Err != nil {
		t.Fatalf("right hand error = %v; want nil", report.RightHand.Err)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("joint failure was not logged as a warning: %+v", entry)
	}
}

func TestSetGrabConfigEnablesPermissiveGrab(t *testing.T) {
	r := newRig()
	s, _ := newTestSloth(r, GrabConfig{})

	if report := s.Tick(tickDT, Input{LeftGrab: true}); report.LeftHand.State != Released {
		t.Fatalf("grabbed thin air outside permissive mode")
	}

	s.SetGrabConfig(GrabConfig{PermissiveGrab: true})
	report := s.Tick(tickDT, Input{LeftGrab: true})
	if report.LeftHand.State != Grabbing || report.LeftHand.Target != r.parts.Fallback {
		t.Fatalf("left hand = %+v; want grabbing the fallback", report.LeftHand)
	}
	if !s.Config().Grab.PermissiveGrab {
		t.Fatalf("Config() does not reflect the new grab rules")
	}
}

func TestResetReleasesBothHands(t *testing.T) {
	r := newRig()
	s, _ := newTestSloth(r, GrabConfig{})
	r.world.Touch(leftTag, r.barA)
	r.world.Touch(rightTag, r.barB)

	s.Tick(tickDT, Input{LeftGrab: true, RightGrab: true})
	if r.world.JointCount() != 2 {
		t.Fatalf("%d joints; want 2", r.world.JointCount())
	}

	s.Reset()
	if r.world.JointCount() != 0 {
		t.Fatalf("%d joints after reset; want 0", r.world.JointCount())
	}
	for _, side := range []Side{Left, Right} {
		if h := s.Hand(side); h.State() != Released || h.Intent() {
			t.Fatalf("%v hand state = %v intent = %v", side, h.State(), h.Intent())
		}
	}
}

func TestArmLengthIsCarried(t *testing.T) {
	r := newRig()
	s, _ := newTestSloth(r, GrabConfig{})

	if got := s.Arm(Right).Length; got != r.parts.ArmLength {
		t.Fatalf("arm length = %v; want %v", got, r.parts.ArmLength)
	}
}

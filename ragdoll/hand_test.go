package ragdoll

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/slothgame/sloth/physics"
)

func newLeftHand(r *rig, cfg GrabConfig) *Hand {
	return NewHand(Left, r.world, r.parts.LeftHand, leftTag, r.parts.Fallback, r.parts.Bodies, cfg)
}

func TestGrabJoinsContactTarget(t *testing.T) {
	r := newRig()
	h := newLeftHand(r, GrabConfig{})
	r.world.Touch(leftTag, r.barA)

	if err := h.Update(true); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if h.State() != Grabbing {
		t.Fatalf("state = %v; want grabbing", h.State())
	}
	id, _ := h.Joint()
	j, ok := r.world.Joint(id)
	if !ok {
		t.Fatalf("joint %d not in world", id)
	}
	if j.A != r.parts.LeftHand || j.B != r.barA {
		t.Fatalf("joint bodies = %d, %d; want hand %d, bar %d", j.A, j.B, r.parts.LeftHand, r.barA)
	}
	if j.AnchorA != (mgl64.Vec2{}) || j.AnchorB != (mgl64.Vec2{}) || j.CollideConnected {
		t.Fatalf("joint = %+v; want zero anchors without collision", j)
	}
	if target, ok := h.Target(); !ok || target != r.barA {
		t.Fatalf("Target() = %d, %v; want %d, true", target, ok, r.barA)
	}
}

func TestGrabAndReleaseAreIdempotent(t *testing.T) {
	r := newRig()
	h := newLeftHand(r, GrabConfig{})
	r.world.Touch(leftTag, r.barA)

	for i := 0; i < 3; i++ {
		if err := h.Grab(); err != nil {
			t.Fatalf("Grab: %v", err)
		}
	}
	if n := r.world.JointsCreated(); n != 1 {
		t.Fatalf("%d joints created; want 1", n)
	}

	for i := 0; i < 3; i++ {
		h.Release()
	}
	if n := r.world.JointsDestroyed(); n != 1 {
		t.Fatalf("%d joints destroyed; want 1", n)
	}
	if h.State() != Released || r.world.JointCount() != 0 {
		t.Fatalf("state = %v with %d joints; want released with none", h.State(), r.world.JointCount())
	}
}

func TestGrabNeverTakesOwnBody(t *testing.T) {
	r := newRig()
	h := newLeftHand(r, GrabConfig{})
	r.world.Touch(leftTag, r.parts.Torso)
	r.world.Touch(leftTag, r.parts.RightHand)

	if err := h.Update(true); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if h.State() != Released {
		t.Fatalf("hand grabbed its own body")
	}

	r.world.Touch(leftTag, r.barA)
	if err := h.Update(true); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if target, _ := h.Target(); target != r.barA {
		t.Fatalf("target = %d; want bar %d behind the excluded bodies", target, r.barA)
	}
}

func TestSelfContactFallsThroughToPermissiveAnchor(t *testing.T) {
	r := newRig()
	h := newLeftHand(r, GrabConfig{PermissiveGrab: true})
	r.world.Touch(leftTag, r.parts.Torso)

	if err := h.Update(true); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if target, _ := h.Target(); target != r.parts.Fallback {
		t.Fatalf("target = %d; want fallback %d", target, r.parts.Fallback)
	}
}

func TestGrabRetriesEveryTickWhileHeld(t *testing.T) {
	r := newRig()
	h := newLeftHand(r, GrabConfig{})

	for i := 0; i < 5; i++ {
		if err := h.Update(true); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if h.State() != Released {
			t.Fatalf("tick %d: grabbed with nothing to hold", i)
		}
	}

	r.world.Touch(leftTag, r.barA)
	if err := h.Update(true); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if h.State() != Grabbing {
		t.Fatalf("held intent did not grab once a target appeared")
	}
}

func TestPermissiveGrabTeleportsFallback(t *testing.T) {
	r := newRig()
	h := newLeftHand(r, GrabConfig{PermissiveGrab: true})
	r.world.SetBodyTransform(r.parts.LeftHand, mgl64.Vec2{3, 4}, 0.7)
	r.world.SetBodyTransform(r.parts.Fallback, mgl64.Vec2{-1000, -1000}, 1.2)

	if err := h.Update(true); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := r.world.BodyPosition(r.parts.Fallback); got != (mgl64.Vec2{3, 4}) {
		t.Fatalf("fallback at %v; want hand position (3, 4)", got)
	}
	if got := r.world.BodyAngle(r.parts.Fallback); got != 0 {
		t.Fatalf("fallback angle = %v; want 0", got)
	}
	id, _ := h.Joint()
	if j, _ := r.world.Joint(id); j.B != r.parts.Fallback {
		t.Fatalf("joint holds %d; want fallback %d", j.B, r.parts.Fallback)
	}
}

func TestPermissiveGrabPrefersRealTarget(t *testing.T) {
	r := newRig()
	h := newLeftHand(r, GrabConfig{PermissiveGrab: true})
	r.world.Touch(leftTag, r.barB)

	if err := h.Update(true); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if target, _ := h.Target(); target != r.barB {
		t.Fatalf("target = %d; want %d", target, r.barB)
	}
	if got := r.world.BodyPosition(r.parts.Fallback); got != (mgl64.Vec2{-1000, -1000}) {
		t.Fatalf("fallback moved to %v", got)
	}
}

func TestPermissiveGrabWithoutFallback(t *testing.T) {
	r := newRig()
	h := NewHand(Left, r.world, r.parts.LeftHand, leftTag, physics.NoBody, r.parts.Bodies, GrabConfig{PermissiveGrab: true})

	if err := h.Update(true); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if h.State() != Released {
		t.Fatalf("grabbed without a fallback anchor")
	}
}

func TestHeldJointIsNotRetargeted(t *testing.T) {
	r := newRig()
	h := newLeftHand(r, GrabConfig{})
	r.world.Touch(leftTag, r.barA)
	if err := h.Update(true); err != nil {
		t.Fatalf("Update: %v", err)
	}

	r.world.Separate(leftTag, r.barA)
	r.world.Touch(leftTag, r.barB)
	for i := 0; i < 10; i++ {
		if err := h.Update(true); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if target, _ := h.Target(); target != r.barA {
		t.Fatalf("target = %d; want original bar %d", target, r.barA)
	}
	if n := r.world.JointsCreated(); n != 1 {
		t.Fatalf("%d joints created; want 1", n)
	}

	if err := h.Update(false); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := h.Update(true); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if target, _ := h.Target(); target != r.barB {
		t.Fatalf("after regrab target = %d; want %d", target, r.barB)
	}
}

func TestJointFailureLeavesHandReleased(t *testing.T) {
	r := newRig()
	h := newLeftHand(r, GrabConfig{})
	r.world.Touch(leftTag, r.barA)
	boom := errors.New("boom")
	r.world.JointErr = boom

	err := h.Update(true)
	if !errors.Is(err, boom) {
		t.Fatalf("Update error = %v; want wrapped boom", err)
	}
	if h.State() != Released {
		t.Fatalf("state = %v after failed joint; want released", h.State())
	}
	if _, ok := h.Target(); ok {
		t.Fatalf("failed grab reported a target")
	}

	r.world.JointErr = nil
	if err := h.Update(true); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if h.State() != Grabbing {
		t.Fatalf("grab not retried after failure")
	}
}

func TestHandReset(t *testing.T) {
	r := newRig()
	h := newLeftHand(r, GrabConfig{})
	r.world.Touch(leftTag, r.barA)
	if err := h.Update(true); err != nil {
		t.Fatalf("Update: %v", err)
	}

	h.Reset()
	if h.State() != Released || h.Intent() {
		t.Fatalf("after reset state = %v intent = %v", h.State(), h.Intent())
	}
	if r.world.JointCount() != 0 {
		t.Fatalf("reset left %d joints", r.world.JointCount())
	}
}

package ragdoll

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/slothgame/sloth/physics"
)

// GrabState is whether a hand currently holds a joint.
type GrabState int

const (
	Released GrabState = iota
	Grabbing
)

func (s GrabState) String() string {
	if s == Grabbing {
		return "grabbing"
	}
	return "released"
}

// Hand owns at most one grab joint between its body and whatever it holds.
type Hand struct {
	Side Side

	backend   physics.Backend
	body      physics.BodyID
	sensorTag string
	fallback  physics.BodyID
	exclude   physics.BodySet
	cfg       GrabConfig

	joint    physics.JointID
	hasJoint bool
	target   physics.BodyID
	intent   bool
}

// NewHand creates a released hand. Contacts with bodies in exclude are never
// grabbed. fallback may be physics.NoBody, which disables permissive grabs.
func NewHand(side Side, backend physics.Backend, body physics.BodyID, sensorTag string, fallback physics.BodyID, exclude physics.BodySet, cfg GrabConfig) *Hand {
	return &Hand{
		Side:      side,
		backend:   backend,
		body:      body,
		sensorTag: sensorTag,
		fallback:  fallback,
		exclude:   exclude,
		cfg:       cfg,
	}
}

func (h *Hand) State() GrabState {
	if h.hasJoint {
		return Grabbing
	}
	return Released
}

// Intent is the grab intent passed to the last Update.
func (h *Hand) Intent() bool {
	return h.intent
}

// Target returns the body the active joint holds.
func (h *Hand) Target() (physics.BodyID, bool) {
	return h.target, h.hasJoint
}

// Joint returns the active joint.
func (h *Hand) Joint() (physics.JointID, bool) {
	return h.joint, h.hasJoint
}

// Body is the physics body of the hand.
func (h *Hand) Body() physics.BodyID {
	return h.body
}

func (h *Hand) SetConfig(cfg GrabConfig) {
	h.cfg = cfg
}

// Grab joins the hand to the earliest body touching its sensor. With no such
// body it pins the hand to the fallback anchor when permissive grabs are on,
// and does nothing otherwise. Grab is a no-op while a joint exists.
func (h *Hand) Grab() error {
	if h.hasJoint {
		return nil
	}

	target, ok := h.backend.ContactTarget(h.sensorTag, h.exclude)
	if !ok {
		if !h.cfg.PermissiveGrab || h.fallback == physics.NoBody {
			return nil
		}
		h.backend.SetBodyTransform(h.fallback, h.backend.BodyPosition(h.body), 0)
		target = h.fallback
	}

	joint, err := h.backend.CreateRevoluteJoint(h.body, target, mgl64.Vec2{}, mgl64.Vec2{}, false)
	if err != nil {
		return fmt.Errorf("%s hand could not grab body %d: %w", h.Side, target, err)
	}
	h.joint = joint
	h.hasJoint = true
	h.target = target
	return nil
}

// Release destroys the active joint, if any.
func (h *Hand) Release() {
	if !h.hasJoint {
		return
	}
	h.backend.DestroyJoint(h.joint)
	h.joint = 0
	h.hasJoint = false
	h.target = physics.NoBody
}

// Update records this tick's intent and grabs or releases to match it.
// While intent is held without a joint, every call tries to grab again.
func (h *Hand) Update(intent bool) error {
	h.intent = intent
	if intent {
		return h.Grab()
	}
	h.Release()
	return nil
}

// Reset releases the hand and forgets its intent.
func (h *Hand) Reset() {
	h.Release()
	h.intent = false
}

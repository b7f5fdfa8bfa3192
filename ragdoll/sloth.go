package ragdoll

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/physics"
)

// Parts names the bodies and sensors a sloth is driven through.
type Parts struct {
	Torso     physics.BodyID
	LeftArm   physics.BodyID
	RightArm  physics.BodyID
	LeftHand  physics.BodyID
	RightHand physics.BodyID

	LeftSensor  string
	RightSensor string

	// Fallback is the static anchor used by permissive grabs.
	Fallback physics.BodyID
	// Bodies is every body belonging to the sloth. Hands never grab these.
	Bodies physics.BodySet

	ArmLength float64
}

// Input is one tick of player intent.
type Input struct {
	Left, Right         mgl64.Vec2
	LeftGrab, RightGrab bool
}

// HandReport describes a hand after a tick.
type HandReport struct {
	State  GrabState
	Target physics.BodyID
	Err    error
}

// Report is what a tick computed and did, for telemetry and debug drawing.
type Report struct {
	DT        float64
	Left      ArmCommand
	Right     ArmCommand
	LeftHand  HandReport
	RightHand HandReport
}

// Sloth owns the controllers of a two-armed ragdoll.
type Sloth struct {
	backend physics.Backend
	parts   Parts
	cfg     Config
	log     logrus.FieldLogger

	leftArm, rightArm   *ArmController
	leftHand, rightHand *Hand
}

func New(backend physics.Backend, parts Parts, cfg Config, log logrus.FieldLogger) *Sloth {
	return &Sloth{
		backend:   backend,
		parts:     parts,
		cfg:       cfg,
		log:       log,
		leftArm:   NewArmController(Left, parts.ArmLength, cfg.Arm),
		rightArm:  NewArmController(Right, parts.ArmLength, cfg.Arm),
		leftHand:  NewHand(Left, backend, parts.LeftHand, parts.LeftSensor, parts.Fallback, parts.Bodies, cfg.Grab),
		rightHand: NewHand(Right, backend, parts.RightHand, parts.RightSensor, parts.Fallback, parts.Bodies, cfg.Grab),
	}
}

func (s *Sloth) Parts() Parts {
	return s.parts
}

func (s *Sloth) Config() Config {
	return s.cfg
}

// SetGrabConfig swaps the grab rules at runtime. Held joints are kept.
func (s *Sloth) SetGrabConfig(cfg GrabConfig) {
	s.cfg.Grab = cfg
	s.leftHand.SetConfig(cfg)
	s.rightHand.SetConfig(cfg)
}

func (s *Sloth) Hand(side Side) *Hand {
	if side == Right {
		return s.rightHand
	}
	return s.leftHand
}

func (s *Sloth) Arm(side Side) *ArmController {
	if side == Right {
		return s.rightArm
	}
	return s.leftArm
}

// Tick drives both arms, then updates both hands. Hand failures are logged
// and reported, never returned.
func (s *Sloth) Tick(dt float64, in Input) Report {
	r := Report{DT: dt}
	r.Left = s.driveArm(s.leftArm, s.leftHand, s.parts.LeftArm, in.Left)
	r.Right = s.driveArm(s.rightArm, s.rightHand, s.parts.RightArm, in.Right)
	r.LeftHand = s.updateHand(s.leftHand, in.LeftGrab)
	r.RightHand = s.updateHand(s.rightHand, in.RightGrab)
	return r
}

func (s *Sloth) driveArm(arm *ArmController, hand *Hand, body physics.BodyID, input mgl64.Vec2) ArmCommand {
	cmd := arm.ComputeTorque(input, s.backend.BodyAngle(body), s.backend.BodyAngularVelocity(body))
	if !s.cfg.Grab.GrabbingHandCanRotate && hand.Intent() {
		cmd.Suppressed = true
		return cmd
	}
	s.backend.ApplyTorque(body, cmd.Torque, true)
	return cmd
}

func (s *Sloth) updateHand(hand *Hand, intent bool) HandReport {
	before := hand.State()
	err := hand.Update(intent)
	if err != nil {
		s.log.WithError(err).WithField("hand", hand.Side).Warn("Could not grab")
	}

	after := hand.State()
	target, _ := hand.Target()
	if before != after {
		s.log.WithFields(logrus.Fields{"hand": hand.Side, "state": after, "target": target}).Debug("hand changed state")
	}
	return HandReport{State: after, Target: target, Err: err}
}

// Reset lets go with both hands and clears recorded intents, for level
// resets and reloads.
func (s *Sloth) Reset() {
	s.leftHand.Reset()
	s.rightHand.Reset()
}

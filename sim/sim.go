// Package sim runs a sloth without a window, driven by a scripted player.
package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/level"
	"github.com/slothgame/sloth/physics"
	"github.com/slothgame/sloth/ragdoll"
	"github.com/tanema/gween"
)

// Script decides the player's input for a tick.
type Script func(tick int, dt float64) ragdoll.Input

// Scripts are the scripts selectable by name.
var Scripts = map[string]Script{
	"reach": Reach,
	"swing": Swing,
}

// Reach points both arms straight up and holds both grabs.
func Reach(tick int, dt float64) ragdoll.Input {
	up := mgl64.Vec2{0, -1}
	return ragdoll.Input{Left: up, Right: up, LeftGrab: true, RightGrab: true}
}

// Swing waves the arms from side to side over two seconds, holding with
// the left hand for the first second and the right hand for the second.
func Swing(tick int, dt float64) ragdoll.Input {
	t := float64(tick) * dt
	phase := math.Sin(math.Pi * t)
	stick := mgl64.Vec2{phase, -math.Sqrt(1 - phase*phase)}
	left := math.Mod(t, 2) < 1
	return ragdoll.Input{Left: stick, Right: stick, LeftGrab: left, RightGrab: !left}
}

// Options configure a simulation.
type Options struct {
	Sloth    ragdoll.Config
	Skeleton ragdoll.SkeletonConfig
	Level    level.Config
	DT       float64
	Script   Script
}

type movingBar struct {
	id       physics.BodyID
	from, to mgl64.Vec2
	seq      *gween.Sequence
}

// Sim owns a world with one sloth in a level.
type Sim struct {
	World physics.World
	Sloth *ragdoll.Sloth

	opts  Options
	parts ragdoll.Parts
	bars  []movingBar
	log   logrus.FieldLogger
	tick  int
	stats Stats
}

// Stats summarise a run.
type Stats struct {
	Ticks int
	// Grabs counts released-to-grabbing transitions per hand.
	LeftGrabs, RightGrabs int
	// GrabErrors counts ticks where a hand failed to form its joint.
	GrabErrors int
	MaxTorque  float64
	Torso      mgl64.Vec2
}

// New builds the level and the sloth in w.
func New(w physics.World, opts Options, log logrus.FieldLogger) (*Sim, error) {
	if opts.Script == nil {
		return nil, fmt.Errorf("sim: no script")
	}
	built := level.Build(w, opts.Level, opts.Skeleton.Friction)
	parts, err := ragdoll.Build(w, opts.Level.Spawn, opts.Skeleton)
	if err != nil {
		return nil, fmt.Errorf("could not build sloth: %w", err)
	}

	s := &Sim{
		World: w,
		Sloth: ragdoll.New(w, parts, opts.Sloth, log),
		opts:  opts,
		parts: parts,
		log:   log,
	}
	for i, id := range built.MovingBars {
		def := opts.Level.MovingBars[i]
		s.bars = append(s.bars, movingBar{id: id, from: def.From, to: def.To, seq: level.NewPathTween(def.Seconds)})
	}
	return s, nil
}

// Step runs one fixed tick: script, bars, sloth, then the physics step.
func (s *Sim) Step() ragdoll.Report {
	dt := s.opts.DT
	in := s.opts.Script(s.tick, dt)
	for _, b := range s.bars {
		level.DriveBar(s.World, b.id, b.from, b.to, b.seq, dt)
	}

	before := [2]ragdoll.GrabState{s.Sloth.Hand(ragdoll.Left).State(), s.Sloth.Hand(ragdoll.Right).State()}
	report := s.Sloth.Tick(dt, in)
	s.World.Step(dt)
	s.tick++

	s.record(before, report)
	return report
}

func (s *Sim) record(before [2]ragdoll.GrabState, r ragdoll.Report) {
	s.stats.Ticks = s.tick
	if before[0] == ragdoll.Released && r.LeftHand.State == ragdoll.Grabbing {
		s.stats.LeftGrabs++
	}
	if before[1] == ragdoll.Released && r.RightHand.State == ragdoll.Grabbing {
		s.stats.RightGrabs++
	}
	if r.LeftHand.Err != nil {
		s.stats.GrabErrors++
	}
	if r.RightHand.Err != nil {
		s.stats.GrabErrors++
	}
	s.stats.MaxTorque = math.Max(s.stats.MaxTorque, math.Max(math.Abs(r.Left.Torque), math.Abs(r.Right.Torque)))
	s.stats.Torso = s.World.BodyPosition(s.parts.Torso)
}

// Run steps until ticks have run or ctx is done, logging once per simulated
// second.
func (s *Sim) Run(ctx context.Context, ticks int) (Stats, error) {
	perSecond := int(math.Round(1 / s.opts.DT))
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return s.stats, err
		}
		r := s.Step()
		if perSecond > 0 && s.tick%perSecond == 0 {
			s.log.WithFields(logrus.Fields{
				"tick":        s.tick,
				"torso":       fmt.Sprintf("%.2f,%.2f", s.stats.Torso.X(), s.stats.Torso.Y()),
				"leftTorque":  fmt.Sprintf("%.2f", r.Left.Torque),
				"rightTorque": fmt.Sprintf("%.2f", r.Right.Torque),
				"leftHand":    r.LeftHand.State,
				"rightHand":   r.RightHand.State,
			}).Info("telemetry")
		}
	}
	return s.stats, nil
}

// Stats returns the summary so far.
func (s *Sim) Stats() Stats {
	return s.stats
}

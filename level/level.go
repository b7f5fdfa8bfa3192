// Package level lays out the bars a sloth can swing between.
package level

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/slothgame/sloth/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Bar is a static horizontal grab bar.
type Bar struct {
	Position    mgl64.Vec2
	HalfExtents mgl64.Vec2
}

// MovingBar is a kinematic bar that shuttles between two points.
type MovingBar struct {
	From, To    mgl64.Vec2
	HalfExtents mgl64.Vec2
	Seconds     float32 // One leg of the trip
}

// Config lays out a level.
type Config struct {
	Spawn      mgl64.Vec2
	Ground     Bar
	Bars       []Bar
	MovingBars []MovingBar
}

// Built holds the bodies created for a level, in config order.
type Built struct {
	Ground     physics.BodyID
	Bars       []physics.BodyID
	MovingBars []physics.BodyID
}

// Build creates every bar of c in w.
func Build(w physics.World, c Config, friction float64) Built {
	var b Built
	b.Ground = w.CreateBody(bodyDef("ground", physics.Static, c.Ground.Position, c.Ground.HalfExtents, friction))
	for _, bar := range c.Bars {
		b.Bars = append(b.Bars, w.CreateBody(bodyDef("bar", physics.Static, bar.Position, bar.HalfExtents, friction)))
	}
	for _, bar := range c.MovingBars {
		b.MovingBars = append(b.MovingBars, w.CreateBody(bodyDef("moving bar", physics.Kinematic, bar.From, bar.HalfExtents, friction)))
	}
	return b
}

func bodyDef(name string, kind physics.BodyKind, pos, half mgl64.Vec2, friction float64) physics.BodyDef {
	return physics.BodyDef{
		Name:        name,
		Kind:        kind,
		Position:    pos,
		Shape:       physics.Box,
		HalfExtents: half,
		Friction:    friction,
	}
}

// NewPathTween returns a sequence that runs 0 to 1 and back, each leg taking
// seconds.
func NewPathTween(seconds float32) *gween.Sequence {
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, seconds, ease.Linear),
		gween.New(1, 0, seconds, ease.Linear),
	)
	return tw
}

// DriveBar advances seq by dt and gives the bar the velocity that carries it
// to the tweened point on from..to by the end of the next step. The sequence
// restarts when it completes.
func DriveBar(w physics.World, id physics.BodyID, from, to mgl64.Vec2, seq *gween.Sequence, dt float64) {
	progress, _, done := seq.Update(float32(dt))
	if done {
		seq.Reset()
	}

	target := from.Add(to.Sub(from).Mul(float64(progress)))
	current := w.BodyPosition(id)
	w.SetBodyVelocity(id, target.Sub(current).Mul(1/dt), 0)
}

// ResetBar stops the bar at the start of its path and rewinds seq.
func ResetBar(w physics.World, id physics.BodyID, from mgl64.Vec2, seq *gween.Sequence) {
	seq.Reset()
	w.SetBodyTransform(id, from, 0)
	w.SetBodyVelocity(id, mgl64.Vec2{}, 0)
}

// Demo is the level the game starts in. The sloth spawns with both hands
// resting against the first bar.
func Demo() Config {
	return Config{
		Spawn:  mgl64.Vec2{-1, 4.4},
		Ground: Bar{Position: mgl64.Vec2{0, -0.5}, HalfExtents: mgl64.Vec2{30, 0.5}},
		Bars: []Bar{
			{Position: mgl64.Vec2{-0.5, 5}, HalfExtents: mgl64.Vec2{2.2, 0.08}},
			{Position: mgl64.Vec2{3.5, 5.5}, HalfExtents: mgl64.Vec2{1.0, 0.08}},
			{Position: mgl64.Vec2{6.5, 6}, HalfExtents: mgl64.Vec2{0.8, 0.08}},
			{Position: mgl64.Vec2{14, 6.5}, HalfExtents: mgl64.Vec2{1.2, 0.08}},
		},
		MovingBars: []MovingBar{
			{
				From:        mgl64.Vec2{8.5, 6},
				To:          mgl64.Vec2{12, 6.5},
				HalfExtents: mgl64.Vec2{0.8, 0.08},
				Seconds:     3,
			},
		},
	}
}

// Package engine picks a physics.World implementation by name.
package engine

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/physics"
	"github.com/slothgame/sloth/physics/box2dworld"
	"github.com/slothgame/sloth/physics/cpworld"
)

const (
	Box2D    = "box2d"
	Chipmunk = "chipmunk"
)

// ErrUnknownEngine is returned for names other than Box2D and Chipmunk.
var ErrUnknownEngine = errors.New("engine: unknown physics engine")

// Options configure a new world.
type Options struct {
	Gravity mgl64.Vec2
	// Solver iterations, used by Box2D only. Zero keeps the engine default.
	VelocityIterations int
	PositionIterations int
}

// Names lists every engine New accepts.
func Names() []string {
	return []string{Box2D, Chipmunk}
}

// New builds an empty world on the named engine.
func New(name string, opts Options, log logrus.FieldLogger) (physics.World, error) {
	switch name {
	case Box2D:
		w := box2dworld.New(opts.Gravity, log)
		if opts.VelocityIterations > 0 {
			w.VelocityIterations = opts.VelocityIterations
		}
		if opts.PositionIterations > 0 {
			w.PositionIterations = opts.PositionIterations
		}
		return w, nil
	case Chipmunk:
		return cpworld.New(opts.Gravity, log), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownEngine, name)
}

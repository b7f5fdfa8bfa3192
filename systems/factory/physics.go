package factory

import (
	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/archetypes"
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/physics/engine"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePhysics builds the scene's world on the named engine.
func CreatePhysics(ecs *ecs.ECS, backend string, log logrus.FieldLogger) (*donburi.Entry, error) {
	world, err := engine.New(backend, engine.Options{
		Gravity:            cfg.Physics.Gravity,
		VelocityIterations: cfg.Physics.VelocityIterations,
		PositionIterations: cfg.Physics.PositionIterations,
	}, log)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Physics.Spawn(ecs)
	components.Physics.SetValue(entry, components.PhysicsData{World: world, Backend: backend})
	return entry, nil
}

package systems

import (
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the rigid-body world by one fixed step.
func UpdatePhysics(ecs *ecs.ECS) {
	entry, ok := components.Physics.First(ecs.World)
	if !ok {
		return
	}
	physics := components.Physics.Get(entry)
	physics.World.Step(cfg.Physics.TimeStep)
	physics.Ticks++
}

// getWorld returns the scene's physics world, or nil before it is built.
func getWorld(ecs *ecs.ECS) *components.PhysicsData {
	entry, ok := components.Physics.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Physics.Get(entry)
}

package systems

import (
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/level"
	"github.com/slothgame/sloth/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovingBars advances each bar along its tweened path.
// Must run BEFORE UpdatePhysics.
func UpdateMovingBars(ecs *ecs.ECS) {
	physics := getWorld(ecs)
	if physics == nil {
		return
	}

	tags.MovingBar.Each(ecs.World, func(e *donburi.Entry) {
		path := components.Path.Get(e)
		level.DriveBar(physics.World, components.Body.Get(e).ID, path.From, path.To, components.Tween.Get(e), cfg.Physics.TimeStep)
	})
}

// resetMovingBars puts every bar back at the start of its path.
func resetMovingBars(ecs *ecs.ECS, physics *components.PhysicsData) {
	tags.MovingBar.Each(ecs.World, func(e *donburi.Entry) {
		level.ResetBar(physics.World, components.Body.Get(e).ID, components.Path.Get(e).From, components.Tween.Get(e))
	})
}

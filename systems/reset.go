package systems

import (
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/ragdoll"
	"github.com/slothgame/sloth/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateReset puts the level back the way it was built when the reset
// action is pressed.
func UpdateReset(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionReset).JustPressed {
		return
	}
	physics := getWorld(ecs)
	if physics == nil {
		return
	}

	tags.Sloth.Each(ecs.World, func(e *donburi.Entry) {
		sloth := components.Sloth.Get(e)
		sloth.Reset()
		ragdoll.RestorePoses(physics.World, sloth.Spawn)
		sloth.LastReport = ragdoll.Report{}
	})
	resetMovingBars(ecs, physics)

	logger.WithField("tick", physics.Ticks).Info("Level reset")
}

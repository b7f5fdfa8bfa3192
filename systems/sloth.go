package systems

import (
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/ragdoll"
	"github.com/slothgame/sloth/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSloth turns this frame's input into arm torques and grab changes.
// Must run AFTER UpdateInput and BEFORE UpdatePhysics.
func UpdateSloth(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	in := ragdoll.Input{
		Left:      input.LeftStick,
		Right:     input.RightStick,
		LeftGrab:  input.Current[cfg.ActionGrabLeft],
		RightGrab: input.Current[cfg.ActionGrabRight],
	}

	tags.Sloth.Each(ecs.World, func(e *donburi.Entry) {
		sloth := components.Sloth.Get(e)
		sloth.LastReport = sloth.Tick(cfg.Physics.TimeStep, in)
	})
}

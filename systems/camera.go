package systems

import (
	"github.com/slothgame/sloth/components"
	"github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera towards the sloth's torso.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	slothEntry, ok := tags.Sloth.First(e.World)
	if !ok {
		return
	}
	physics := getWorld(e)
	if physics == nil {
		return
	}
	sloth := components.Sloth.Get(slothEntry)
	target := physics.World.BodyPosition(sloth.Parts().Torso)

	camera.Position.X += (target.X() - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y() - camera.Position.Y) * config.Camera.FollowSmoothing
}

package factory

import (
	"github.com/slothgame/sloth/archetypes"
	"github.com/slothgame/sloth/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centred on at, in world metres.
func CreateCamera(ecs *ecs.ECS, at math.Vec2) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: at})
}

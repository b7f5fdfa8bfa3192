package factory

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/archetypes"
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/physics"
	"github.com/slothgame/sloth/ragdoll"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSloth builds a sloth skeleton at spawn and the entity that drives it.
func CreateSloth(ecs *ecs.ECS, world physics.World, spawn mgl64.Vec2, log logrus.FieldLogger) (*donburi.Entry, error) {
	parts, err := ragdoll.Build(world, spawn, cfg.Skeleton)
	if err != nil {
		return nil, fmt.Errorf("could not build sloth: %w", err)
	}

	sloth := archetypes.Sloth.Spawn(ecs)
	components.Sloth.SetValue(sloth, components.SlothData{
		Sloth: ragdoll.New(world, parts, cfg.Sloth, log.WithField("entity", "sloth")),
		Spawn: ragdoll.CapturePoses(world, parts.Torso, parts.LeftArm, parts.RightArm, parts.LeftHand, parts.RightHand),
	})
	return sloth, nil
}

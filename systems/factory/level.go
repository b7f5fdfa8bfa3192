package factory

import (
	"github.com/slothgame/sloth/archetypes"
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/level"
	"github.com/slothgame/sloth/physics"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the ground and every bar of the configured level.
func CreateLevel(ecs *ecs.ECS, world physics.World) {
	built := level.Build(world, cfg.Level, cfg.Skeleton.Friction)

	ground := archetypes.Ground.Spawn(ecs)
	components.Body.SetValue(ground, components.BodyData{ID: built.Ground})

	for _, id := range built.Bars {
		bar := archetypes.Bar.Spawn(ecs)
		components.Body.SetValue(bar, components.BodyData{ID: id})
	}

	for i, id := range built.MovingBars {
		def := cfg.Level.MovingBars[i]
		bar := archetypes.MovingBar.Spawn(ecs)
		components.Body.SetValue(bar, components.BodyData{ID: id})
		components.Path.SetValue(bar, components.PathData{From: def.From, To: def.To})
		// The bar moves using a *gween.Sequence of tweens, shuttling it back and forth.
		components.Tween.Set(bar, level.NewPathTween(def.Seconds))
	}
}

package archetypes

import (
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Physics = newArchetype(
		components.Physics,
	)
	Sloth = newArchetype(
		tags.Sloth,
		components.Sloth,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Body,
	)
	Bar = newArchetype(
		tags.Bar,
		components.Body,
	)
	MovingBar = newArchetype(
		tags.MovingBar,
		components.Body,
		components.Path,
		components.Tween,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

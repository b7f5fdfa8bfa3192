package components

import (
	"github.com/slothgame/sloth/physics"
	"github.com/yohamta/donburi"
)

// PhysicsData holds the rigid-body world a scene runs on.
type PhysicsData struct {
	World   physics.World
	Backend string // Engine name, for the HUD
	Ticks   int    // Steps taken since the world was built
}

var Physics = donburi.NewComponentType[PhysicsData]()

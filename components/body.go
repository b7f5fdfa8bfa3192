package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/slothgame/sloth/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its rigid body.
type BodyData struct {
	ID physics.BodyID
}

var Body = donburi.NewComponentType[BodyData]()

// PathData is the segment a moving bar travels along, driven by its Tween.
type PathData struct {
	From, To mgl64.Vec2
}

var Path = donburi.NewComponentType[PathData]()

package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world-space point (metres, y up) at the screen centre.
type CameraData struct {
	Position math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()

package tags

import "github.com/yohamta/donburi"

var (
	Sloth     = donburi.NewTag().SetName("Sloth")
	Bar       = donburi.NewTag().SetName("Bar")
	MovingBar = donburi.NewTag().SetName("MovingBar")
	Ground    = donburi.NewTag().SetName("Ground")
)

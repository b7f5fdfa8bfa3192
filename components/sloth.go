package components

import (
	"github.com/slothgame/sloth/ragdoll"
	"github.com/yohamta/donburi"
)

type SlothData struct {
	*ragdoll.Sloth
	Spawn      []ragdoll.Pose // Body transforms restored on reset
	LastReport ragdoll.Report
}

var Sloth = donburi.NewComponentType[SlothData]()

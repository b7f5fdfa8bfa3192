package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween is a looping progress sequence in [0, 1].
var Tween = donburi.NewComponentType[gween.Sequence]()

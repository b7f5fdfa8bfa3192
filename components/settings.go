package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the player's runtime toggles.
type SettingsData struct {
	PermissiveGrab        bool
	GrabbingHandCanRotate bool
	Backend               string
	DebugOverlay          bool
}

var Settings = donburi.NewComponentType[SettingsData]()

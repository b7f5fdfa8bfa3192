package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/ragdoll"
	"github.com/slothgame/sloth/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from the global config on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			PermissiveGrab:        cfg.Sloth.Grab.PermissiveGrab,
			GrabbingHandCanRotate: cfg.Sloth.Grab.GrabbingHandCanRotate,
			Backend:               cfg.Physics.Backend,
			DebugOverlay:          cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the runtime toggles and pushes grab rule changes
// into every sloth.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	changed := false
	if GetAction(input, cfg.ActionToggleSpiderman).JustPressed {
		settings.PermissiveGrab = !settings.PermissiveGrab
		changed = true
	}
	if GetAction(input, cfg.ActionToggleHandRotation).JustPressed {
		settings.GrabbingHandCanRotate = !settings.GrabbingHandCanRotate
		changed = true
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.DebugOverlay = !settings.DebugOverlay
		changed = true
	}
	if GetAction(input, cfg.ActionSwitchEngine).JustPressed {
		settings.Backend = nextBackend(settings.Backend)
		changed = true
	}
	if !changed {
		return
	}

	grab := ragdoll.GrabConfig{
		PermissiveGrab:        settings.PermissiveGrab,
		GrabbingHandCanRotate: settings.GrabbingHandCanRotate,
	}
	cfg.Sloth.Grab = grab
	cfg.Debug.Overlay = settings.DebugOverlay
	cfg.Physics.Backend = settings.Backend
	tags.Sloth.Each(ecs.World, func(e *donburi.Entry) {
		components.Sloth.Get(e).SetGrabConfig(grab)
	})

	logger.WithFields(logrus.Fields{
		"spiderman":  settings.PermissiveGrab,
		"handRotate": settings.GrabbingHandCanRotate,
		"debug":      settings.DebugOverlay,
		"engine":     settings.Backend,
	}).Info("Settings changed")
	SaveCurrentSettings(settings)
}

// nextBackend cycles through the available physics engines.
func nextBackend(current string) string {
	names := cfg.Settings.Backends
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// EngineChanged reports whether the player picked an engine other than the
// one the scene was built on.
func EngineChanged(ecs *ecs.ECS) bool {
	physics := getWorld(ecs)
	if physics == nil {
		return false
	}
	return GetOrCreateSettings(ecs).Backend != physics.Backend
}

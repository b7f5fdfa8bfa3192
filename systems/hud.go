package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/slothgame/sloth/components"
	"github.com/slothgame/sloth/tags"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 8

// DrawHUD prints the active modes and what each hand is doing in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)

	backend := settings.Backend
	if physics := getWorld(ecs); physics != nil {
		backend = physics.Backend
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("engine %s  spiderman %s  hand rotate %s",
		backend, onOff(settings.PermissiveGrab), onOff(settings.GrabbingHandCanRotate)), hudMargin, hudMargin)

	slothEntry, ok := tags.Sloth.First(ecs.World)
	if !ok {
		return
	}
	report := components.Sloth.Get(slothEntry).LastReport
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("left %s  right %s",
		report.LeftHand.State, report.RightHand.State), hudMargin, hudMargin+16)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

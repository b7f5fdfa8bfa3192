package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle and single steps while paused.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	// Toggle pause on ESC or P
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
	// A step only counts while paused, and only for this frame
	pause.Stepping = pause.IsPaused && GetAction(input, cfg.ActionStep).JustPressed
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.UI.PauseOverlayColor,
		false,
	)

	// Center the label (debug font glyphs are 6x16)
	ebitenutil.DebugPrintAt(screen, "PAUSED", width/2-18, height/2-8)

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	ebitenutil.DebugPrintAt(screen, hint, (width-len(hint)*6)/2, height-24)
}

// getPauseHint returns the appropriate hint for the pause overlay
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Options: Resume   N: Step"
	case components.InputXbox:
		return "Start: Resume   N: Step"
	}
	return "Esc/P: Resume   N: Step"
}

// WithPauseCheck wraps a system to skip execution when paused, unless a
// single step was requested this frame.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused && !pause.Stepping {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	ent, ok := components.Pause.First(ecs.World)
	if !ok {
		ent = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(ent)
}

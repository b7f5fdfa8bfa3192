package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/physics"
	"github.com/slothgame/sloth/ragdoll"
	"github.com/slothgame/sloth/tags"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug overlays joints, hand sensors and each arm's target and current
// angle.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.DebugOverlay {
		return
	}
	phys := getWorld(ecs)
	if phys == nil {
		return
	}
	v, ok := getView(ecs, screen)
	if !ok {
		return
	}

	for _, j := range phys.World.Joints() {
		ax, ay := v.toScreen(j.AnchorA)
		bx, by := v.toScreen(j.AnchorB)
		vector.StrokeLine(screen, ax, ay, bx, by, 1, cfg.UI.JointColor, true)
		vector.StrokeCircle(screen, ax, ay, 3, 1, cfg.UI.JointColor, true)
	}

	slothEntry, ok := tags.Sloth.First(ecs.World)
	if !ok {
		return
	}
	sloth := components.Sloth.Get(slothEntry)
	parts := sloth.Parts()
	report := sloth.LastReport

	for _, hand := range []physics.BodyID{parts.LeftHand, parts.RightHand} {
		hx, hy := v.toScreen(phys.World.BodyPosition(hand))
		vector.StrokeCircle(screen, hx, hy, float32(cfg.Skeleton.HandSensorRadius*v.ppm), 1, cfg.UI.SensorColor, true)
	}

	lx, ly := v.toScreen(phys.World.BodyPosition(parts.LeftArm))
	rx, ry := v.toScreen(phys.World.BodyPosition(parts.RightArm))
	drawArmGizmo(screen, lx, ly, report.Left)
	drawArmGizmo(screen, rx, ry, report.Right)

	ebitenutil.DebugPrintAt(screen, armLine("L", report.Left), 8, v.intHeight()-34)
	ebitenutil.DebugPrintAt(screen, armLine("R", report.Right), 8, v.intHeight()-18)
}

// drawArmGizmo draws the stick heading and the arm heading from the arm's
// centre. Both angles share the stick's y-down frame, which is also the
// screen's.
func drawArmGizmo(screen *ebiten.Image, x, y float32, cmd ragdoll.ArmCommand) {
	r := cfg.UI.DebugArmRadius
	current := cfg.UI.CurrentColor
	if cmd.Suppressed {
		current = cfg.UI.SuppressedColor
	}
	vector.StrokeCircle(screen, x, y, r, 1, color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)
	ray(screen, x, y, r, cmd.Current, current)
	if cmd.Magnitude > 0 {
		ray(screen, x, y, r, cmd.Target, cfg.UI.TargetColor)
	}
}

func ray(screen *ebiten.Image, x, y, r float32, angle float64, c color.Color) {
	ex := x + r*float32(math.Cos(angle))
	ey := y + r*float32(math.Sin(angle))
	vector.StrokeLine(screen, x, y, ex, ey, 2, c, true)
}

func armLine(name string, cmd ragdoll.ArmCommand) string {
	return fmt.Sprintf("%s target %+.2f current %+.2f dtheta %+.2f omega %+.2f torque %+.2f",
		name, cmd.Target, cmd.Current, cmd.DeltaTheta, cmd.Omega, cmd.Torque)
}

func (v view) intHeight() int {
	return int(v.height)
}

package systems

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/physics"
	"github.com/yohamta/donburi/ecs"
)

// view maps world metres (y up) onto screen pixels (y down) around the
// camera.
type view struct {
	center        mgl64.Vec2
	ppm           float64
	width, height float64
}

func getView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	return view{
		center: mgl64.Vec2{camera.Position.X, camera.Position.Y},
		ppm:    cfg.Camera.PixelsPerMetre,
		width:  float64(screen.Bounds().Dx()),
		height: float64(screen.Bounds().Dy()),
	}, true
}

func (v view) toScreen(p mgl64.Vec2) (float32, float32) {
	x := (p.X()-v.center.X())*v.ppm + v.width/2
	y := v.height/2 - (p.Y()-v.center.Y())*v.ppm
	return float32(x), float32(y)
}

// DrawWorld renders every body with a solid shape as an outline.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	phys := getWorld(ecs)
	if phys == nil {
		return
	}
	v, ok := getView(ecs, screen)
	if !ok {
		return
	}

	for _, id := range phys.World.Bodies() {
		info, ok := phys.World.Body(id)
		if !ok {
			continue
		}
		c := cfg.UI.BodyColor
		if info.Def.Group < 0 && info.Def.Group == cfg.Skeleton.Group {
			c = cfg.UI.SlothColor
		}
		drawBody(screen, v, info, c)
	}
}

func drawBody(screen *ebiten.Image, v view, info physics.BodyInfo, c color.Color) {
	switch info.Def.Shape {
	case physics.Box:
		rot := mgl64.Rotate2D(info.Angle)
		hx, hy := info.Def.HalfExtents.X(), info.Def.HalfExtents.Y()
		local := [4]mgl64.Vec2{{-hx, -hy}, {hx, -hy}, {hx, hy}, {-hx, hy}}
		var xs, ys [4]float32
		for i, corner := range local {
			xs[i], ys[i] = v.toScreen(info.Position.Add(rot.Mul2x1(corner.Add(info.Def.Offset))))
		}
		for i := range local {
			j := (i + 1) % len(local)
			vector.StrokeLine(screen, xs[i], ys[i], xs[j], ys[j], 1.5, c, true)
		}
	case physics.Circle:
		cx, cy := v.toScreen(info.Position)
		r := float32(info.Def.Radius * v.ppm)
		vector.StrokeCircle(screen, cx, cy, r, 1.5, c, true)
		// Spoke so rotation is visible
		ex, ey := v.toScreen(info.Position.Add(mgl64.Vec2{math.Cos(info.Angle), math.Sin(info.Angle)}.Mul(info.Def.Radius)))
		vector.StrokeLine(screen, cx, cy, ex, ey, 1, c, true)
	}
}

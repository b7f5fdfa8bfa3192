package main

import (
	"flag"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/scenes"
	"github.com/slothgame/sloth/systems"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(log logrus.FieldLogger) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, log)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	backend := flag.String("backend", "", "Physics engine (box2d or chipmunk), overrides saved settings")
	debug := flag.Bool("debug", false, "Draw bodies, joints and arm angles")
	spiderman := flag.Bool("spiderman", false, "Let hands grab thin air")
	rotate := flag.Bool("rotate", true, "Keep driving an arm while its hand holds on")
	verbose := flag.Bool("v", false, "Log hand state changes")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	systems.SetLogger(log)

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Sloth")

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.WithError(err).Warn("Could not initialize persistence")
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Flags given on the command line win over saved settings
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			config.Physics.Backend = *backend
		case "debug":
			config.Debug.Overlay = *debug
		case "spiderman":
			config.Sloth.Grab.PermissiveGrab = *spiderman
		case "rotate":
			config.Sloth.Grab.GrabbingHandCanRotate = *rotate
		}
	})

	if err := ebiten.RunGame(NewGame(log)); err != nil {
		log.Fatal(err)
	}
}

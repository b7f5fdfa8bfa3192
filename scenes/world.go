package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/systems"
	"github.com/slothgame/sloth/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SceneChanger swaps the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene is the sloth, the level and the physics world they live in.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	log          logrus.FieldLogger
	once         sync.Once
	err          error
}

func NewWorldScene(sc SceneChanger, log logrus.FieldLogger) *WorldScene {
	return &WorldScene{sceneChanger: sc, log: log}
}

// Update runs one fixed step. It returns the error that stopped the scene
// from being built, if any.
func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		return ws.err
	}
	ws.ecs.Update()

	// Rebuild everything on the newly picked engine
	if systems.EngineChanged(ws.ecs) {
		ws.Close()
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.log))
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Close releases the physics world.
func (ws *WorldScene) Close() {
	if ws.ecs == nil {
		return
	}
	if entry, ok := components.Physics.First(ws.ecs.World); ok {
		components.Physics.Get(entry).World.Close()
	}
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateReset)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMovingBars))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSloth))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = ecs

	settings := systems.GetOrCreateSettings(ws.ecs)
	physicsEntry, err := factory.CreatePhysics(ws.ecs, settings.Backend, ws.log)
	if err != nil {
		ws.err = err
		return
	}
	world := components.Physics.Get(physicsEntry).World

	factory.CreateLevel(ws.ecs, world)
	if _, err := factory.CreateSloth(ws.ecs, world, cfg.Level.Spawn, ws.log); err != nil {
		ws.err = err
		return
	}
	factory.CreateCamera(ws.ecs, math.Vec2{X: cfg.Level.Spawn.X(), Y: cfg.Level.Spawn.Y()})

	ws.log.WithField("engine", settings.Backend).Info("World built")
}

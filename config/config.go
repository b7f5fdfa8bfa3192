package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/slothgame/sloth/level"
	"github.com/slothgame/sloth/physics/engine"
	"github.com/slothgame/sloth/ragdoll"
	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every renderer is registered on.
const Default ecs.LayerID = 0

// PhysicsConfig contains world settings shared by both engines.
type PhysicsConfig struct {
	Backend            string
	Gravity            mgl64.Vec2
	TimeStep           float64
	VelocityIterations int
	PositionIterations int
}

type CameraConfig struct {
	PixelsPerMetre  float64
	FollowSmoothing float64 // How fast camera follows the torso (0.0-1.0)
}

type UIConfig struct {
	BackgroundColor color.RGBA
	BodyColor       color.RGBA
	SlothColor      color.RGBA
	SensorColor     color.RGBA
	JointColor      color.RGBA
	TargetColor     color.RGBA
	CurrentColor    color.RGBA
	SuppressedColor color.RGBA
	DebugArmRadius  float32 // Pixels of the angle gizmo

	PauseOverlayColor color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw bodies, joints and arm angles
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Sloth ragdoll.Config
var Skeleton ragdoll.SkeletonConfig
var Physics PhysicsConfig
var Level level.Config
var Camera CameraConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Grey         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	Brown        = color.RGBA{R: 140, G: 100, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Sloth = ragdoll.DefaultConfig()
	Skeleton = ragdoll.DefaultSkeleton()

	Physics = PhysicsConfig{
		Backend:            engine.Box2D,
		Gravity:            mgl64.Vec2{0, -10},
		TimeStep:           1.0 / 60.0,
		VelocityIterations: 8,
		PositionIterations: 3,
	}

	Level = level.Demo()

	Camera = CameraConfig{
		PixelsPerMetre:  40,
		FollowSmoothing: 0.1,
	}

	UI = UIConfig{
		BackgroundColor: color.RGBA{R: 30, G: 34, B: 40, A: 255},
		BodyColor:       Grey,
		SlothColor:      Brown,
		SensorColor:     LightBlue,
		JointColor:      Yellow,
		TargetColor:     LightGreen,
		CurrentColor:    Orange,
		SuppressedColor: Red,
		DebugArmRadius:  24,

		PauseOverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 180},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
	}
}

package physics

import "github.com/go-gl/mathgl/mgl64"

// BodyKind selects how the engine moves a body.
type BodyKind int

const (
	Static BodyKind = iota
	Kinematic
	Dynamic
)

func (k BodyKind) String() string {
	switch k {
	case Static:
		return "static"
	case Kinematic:
		return "kinematic"
	case Dynamic:
		return "dynamic"
	}
	return "unknown"
}

// ShapeKind is the collision shape of a body.
type ShapeKind int

const (
	NoShape ShapeKind = iota
	Box
	Circle
)

// BodyDef describes a body with at most one solid shape.
//
// Box shapes use HalfExtents and are centred on Offset in body space. Circle
// shapes use Radius. Bodies sharing a negative Group never collide with each
// other.
type BodyDef struct {
	Name     string
	Kind     BodyKind
	Position mgl64.Vec2
	Angle    float64

	Shape       ShapeKind
	HalfExtents mgl64.Vec2
	Radius      float64
	Offset      mgl64.Vec2

	Density        float64
	Friction       float64
	AngularDamping float64
	Group          int
}

// SensorDef describes a circular non-colliding shape that reports contacts
// under Tag.
type SensorDef struct {
	Tag    string
	Radius float64
	Offset mgl64.Vec2
}

// BodyInfo is a read-only snapshot of a body for drawing and telemetry.
type BodyInfo struct {
	ID       BodyID
	Def      BodyDef
	Position mgl64.Vec2
	Angle    float64
}

// JointInfo is the world-space position of a joint's two anchors.
type JointInfo struct {
	ID      JointID
	AnchorA mgl64.Vec2
	AnchorB mgl64.Vec2
}

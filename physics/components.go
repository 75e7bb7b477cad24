// Package physics integrates rigid bodies stored in an ecs.World: gravity,
// sphere against oriented box contacts and restitution.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BodyKind selects how the integrator treats a body.
type BodyKind uint8

const (
	// Dynamic bodies are moved by gravity and contacts.
	Dynamic BodyKind = iota
	// KinematicPositionBased bodies are moved by systems only; they push
	// dynamic bodies but are never pushed.
	KinematicPositionBased
	// Fixed bodies never move.
	Fixed
)

func (k BodyKind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case KinematicPositionBased:
		return "kinematic"
	case Fixed:
		return "fixed"
	}
	return "unknown"
}

// Transform is the pose of a body.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform returns an unrotated transform at (x, y, z).
func NewTransform(x, y, z float64) Transform {
	return Transform{Position: mgl64.Vec3{x, y, z}, Rotation: mgl64.QuatIdent()}
}

// WithRotation returns t with its rotation replaced by q.
func (t Transform) WithRotation(q mgl64.Quat) Transform {
	t.Rotation = q
	return t
}

// Rotate applies q on top of the current rotation, in world space.
func (t *Transform) Rotate(q mgl64.Quat) {
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// Euler builds a rotation from angles in radians applied in X, Y, Z order.
func Euler(x, y, z float64) mgl64.Quat {
	return mgl64.AnglesToQuat(x, y, z, mgl64.XYZ)
}

// Degrees converts degrees to radians.
func Degrees(deg float64) float64 {
	return deg * math.Pi / 180
}

// RigidBody marks an entity as simulated.
type RigidBody struct {
	Kind BodyKind
}

// Velocity is the linear (m/s) and angular (rad/s) velocity of a body.
type Velocity struct {
	Linear  mgl64.Vec3
	Angular mgl64.Vec3
}

// Shape is the collision geometry of a collider.
type Shape uint8

const (
	ShapeBall Shape = iota
	ShapeCuboid
)

// Collider describes the collision geometry of a body.
type Collider struct {
	HalfExtents mgl64.Vec3 // cuboid only
	Radius      float64    // ball only
	Friction    float64
	Shape       Shape
}

// DefaultFriction is the friction of colliders built by Ball and Cuboid.
const DefaultFriction = 0.5

// Ball returns a sphere collider.
func Ball(radius float64) Collider {
	return Collider{Shape: ShapeBall, Radius: radius, Friction: DefaultFriction}
}

// Cuboid returns a box collider with the given half extents.
func Cuboid(hx, hy, hz float64) Collider {
	return Collider{Shape: ShapeCuboid, HalfExtents: mgl64.Vec3{hx, hy, hz}, Friction: DefaultFriction}
}

// Restitution is the bounciness of a body. Contacts use the average of both
// bodies' coefficients; bodies without the component count as 0.
type Restitution struct {
	Coefficient float64
}

// LockedAxes freezes degrees of freedom of a dynamic body.
type LockedAxes uint8

const (
	TranslationLockedX LockedAxes = 1 << iota
	TranslationLockedY
	TranslationLockedZ
	RotationLockedX
	RotationLockedY
	RotationLockedZ

	TranslationLocked = TranslationLockedX | TranslationLockedY | TranslationLockedZ
	RotationLocked    = RotationLockedX | RotationLockedY | RotationLockedZ
)

// apply zeroes the locked components of v.
func (l LockedAxes) apply(v *Velocity) {
	for i := range 3 {
		if l&(TranslationLockedX<<i) != 0 {
			v.Linear[i] = 0
		}
		if l&(RotationLockedX<<i) != 0 {
			v.Angular[i] = 0
		}
	}
}

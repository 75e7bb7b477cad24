package physics

import (
	"math"

	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// Config holds the integration parameters.
type Config struct {
	Gravity mgl64.Vec3
	// Timestep is the simulated time of one frame, in seconds.
	Timestep float64
	// Substeps splits each frame into smaller integration steps.
	Substeps int
	// RestSpeed is the approach speed below which contacts stop bouncing.
	RestSpeed float64
}

// DefaultConfig matches a 60 Hz simulation under Earth gravity.
func DefaultConfig() Config {
	return Config{
		Gravity:   mgl64.Vec3{0, -9.81, 0},
		Timestep:  1.0 / 60,
		Substeps:  2,
		RestSpeed: 0.5,
	}
}

// Context is the physics resource: configuration plus typed accessors. It is
// created during startup and then only read, so grouped systems can share it.
type Context struct {
	Transforms   *ecs.Builder[Transform]
	Bodies       *ecs.Builder[RigidBody]
	Velocities   *ecs.Builder[Velocity]
	Colliders    *ecs.Builder[Collider]
	Restitutions *ecs.Builder[Restitution]
	Locks        *ecs.Builder[LockedAxes]
	Config
}

// NewContext registers the physics components in w.
func NewContext(w *ecs.World, cfg Config) *Context {
	if cfg.Substeps < 1 {
		cfg.Substeps = 1
	}
	return &Context{
		Config:       cfg,
		Transforms:   ecs.NewBuilder[Transform](w),
		Bodies:       ecs.NewBuilder[RigidBody](w),
		Velocities:   ecs.NewBuilder[Velocity](w),
		Colliders:    ecs.NewBuilder[Collider](w),
		Restitutions: ecs.NewBuilder[Restitution](w),
		Locks:        ecs.NewBuilder[LockedAxes](w),
	}
}

// body is the per-step view of one entity.
type body struct {
	tr          *Transform
	vel         *Velocity
	col         *Collider
	restitution float64
	lock        LockedAxes
}

const maxGroupBodies = 16

// Step advances every body in members by one frame. Bodies only collide with
// bodies of the same slice, which is how instances stay independent.
func (c *Context) Step(members []ecs.Entity) {
	var dynBuf, solidBuf [maxGroupBodies]body
	dynamic, solid := dynBuf[:0], solidBuf[:0]
	for _, e := range members {
		rb := c.Bodies.Get(e)
		tr := c.Transforms.Get(e)
		if rb == nil || tr == nil {
			continue
		}
		b := body{tr: tr, col: c.Colliders.Get(e)}
		if r := c.Restitutions.Get(e); r != nil {
			b.restitution = r.Coefficient
		}
		if l := c.Locks.Get(e); l != nil {
			b.lock = *l
		}
		if rb.Kind == Dynamic {
			b.vel = c.Velocities.Get(e)
			if b.vel == nil {
				continue
			}
			dynamic = append(dynamic, b)
		} else if b.col != nil {
			solid = append(solid, b)
		}
	}

	h := c.Timestep / float64(c.Substeps)
	for range c.Substeps {
		for i := range dynamic {
			d := &dynamic[i]
			c.integrate(d, h)
			if d.col == nil || d.col.Shape != ShapeBall {
				continue
			}
			for j := range solid {
				c.collide(d, &solid[j], h)
			}
		}
	}
}

func (c *Context) integrate(d *body, h float64) {
	d.vel.Linear = d.vel.Linear.Add(c.Gravity.Mul(h))
	d.lock.apply(d.vel)
	d.tr.Position = d.tr.Position.Add(d.vel.Linear.Mul(h))
	if w := d.vel.Angular; w.Len() > 0 {
		spin := mgl64.Quat{W: 0, V: w}.Mul(d.tr.Rotation).Scale(0.5 * h)
		d.tr.Rotation = d.tr.Rotation.Add(spin).Normalize()
	}
}

// collide resolves a ball against a solid cuboid.
func (c *Context) collide(ball, solid *body, h float64) {
	if solid.col.Shape != ShapeCuboid {
		return
	}
	n, depth, ok := sphereBox(ball.tr.Position, ball.col.Radius, *solid.tr, solid.col.HalfExtents)
	if !ok {
		return
	}
	ball.tr.Position = ball.tr.Position.Add(n.Mul(depth))

	v := ball.vel.Linear
	vn := v.Dot(n)
	if vn < 0 {
		e := (ball.restitution + solid.restitution) / 2
		if -vn < c.RestSpeed {
			e = 0
		}
		v = v.Sub(n.Mul((1 + e) * vn))
	}
	tangent := v.Sub(n.Mul(v.Dot(n)))
	friction := (ball.col.Friction + solid.col.Friction) / 2
	v = v.Sub(tangent.Mul(math.Min(1, friction*h)))
	ball.vel.Linear = v
	// rolling without slipping
	ball.vel.Angular = n.Cross(v).Mul(1 / ball.col.Radius)
	ball.lock.apply(ball.vel)
}

// sphereBox returns the contact normal (pointing from the box to the sphere)
// and penetration depth of a sphere against an oriented box.
func sphereBox(center mgl64.Vec3, radius float64, box Transform, half mgl64.Vec3) (mgl64.Vec3, float64, bool) {
	inv := box.Rotation.Inverse()
	local := inv.Rotate(center.Sub(box.Position))
	var closest mgl64.Vec3
	for i := range 3 {
		closest[i] = mgl64.Clamp(local[i], -half[i], half[i])
	}
	d := local.Sub(closest)
	dist := d.Len()
	if dist > radius {
		return mgl64.Vec3{}, 0, false
	}
	if dist > 1e-9 {
		return box.Rotation.Rotate(d.Mul(1 / dist)), radius - dist, true
	}
	// center inside the box: leave through the nearest face
	axis, sign, best := 1, 1.0, math.Inf(1)
	for i := range 3 {
		if gap := half[i] - local[i]; gap < best {
			axis, sign, best = i, 1, gap
		}
		if gap := half[i] + local[i]; gap < best {
			axis, sign, best = i, -1, gap
		}
	}
	var nLocal mgl64.Vec3
	nLocal[axis] = sign
	return box.Rotation.Rotate(nLocal), radius + best, true
}

// Package sim runs many independent board and ball simulations side by side.
//
// Every instance owns one tilting board and one ball. The per-instance
// registrations live in simulations_generated.go, written by cmd/generate.
package sim

//go:generate go run ../cmd/generate -target app -o simulations_generated.go

import (
	"math/rand/v2"

	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/edwinsyarief/tiltboard/physics"
)

const (
	// Spacing is the distance along X between neighboring instances.
	Spacing = 10.0
	// BallStartHeight is the height a ball is dropped from.
	BallStartHeight = 4.5
	// ResetHeight is the height below which an instance resets.
	ResetHeight = -2.0
	BallRadius  = 0.5
	// BallRestitution is the bounciness of the ball.
	BallRestitution = 0.7

	BoardHalfX = 5.0
	BoardHalfY = 0.1
	BoardHalfZ = 5.0

	// MaxTilt bounds the X and Z components of the board rotation quaternion
	// that movement pushes against.
	MaxTilt = 0.1
	// TiltStep is the board rotation per movement, in degrees.
	TiltStep = 1.0
	// InitialTilt is the largest tilt, in degrees, of a freshly placed board.
	InitialTilt = 2.5
)

// Simulation tags an entity with the instance it belongs to.
type Simulation struct {
	Index int
}

// Board marks the board of an instance.
type Board struct{}

// ResetEvent is published on the world event bus at the end of a frame in
// which an instance reset.
type ResetEvent struct {
	Instance int
	// Resets is the instance's reset count including this one.
	Resets uint64
	Frame  uint64
}

// Instance is the per-instance record of State.
type Instance struct {
	rng     *rand.Rand
	Resets  uint64
	pending bool
}

// State is the resource holding every instance record, indexed by instance.
// A grouped system only touches the record of its own instance.
type State struct {
	Instances []Instance
	Seed      uint64

	frame      uint64
	transforms *ecs.Builder[physics.Transform]
	velocities *ecs.Builder[physics.Velocity]
	boards     *ecs.Builder[Board]
}

// NewState creates the records of n instances. Instance i draws from a PCG
// stream seeded with (seed, i), so runs with the same seed repeat.
func NewState(w *ecs.World, n int, seed uint64) *State {
	s := &State{
		Instances:  make([]Instance, n),
		Seed:       seed,
		transforms: ecs.NewBuilder[physics.Transform](w),
		velocities: ecs.NewBuilder[physics.Velocity](w),
		boards:     ecs.NewBuilder[Board](w),
	}
	for i := range s.Instances {
		s.Instances[i].rng = rand.New(rand.NewPCG(seed, uint64(i)))
	}
	return s
}

// TotalResets sums the reset counts of all instances.
func (s *State) TotalResets() uint64 {
	var n uint64
	for i := range s.Instances {
		n += s.Instances[i].Resets
	}
	return n
}

// single returns the only member of group t accepted by match. It reports
// false when there is none or more than one.
func single(w *ecs.World, t int, match func(ecs.Entity) bool) (ecs.Entity, bool) {
	var found ecs.Entity
	n := 0
	for _, e := range w.Tagged(t) {
		if match(e) {
			found = e
			n++
		}
	}
	return found, n == 1
}

func (s *State) board(w *ecs.World, t int) (ecs.Entity, bool) {
	return single(w, t, s.boards.Has)
}

func (s *State) ball(w *ecs.World, t int) (ecs.Entity, bool) {
	return single(w, t, func(e ecs.Entity) bool {
		return s.velocities.Has(e) && !s.boards.Has(e)
	})
}

// randomTilt returns a rotation of up to InitialTilt degrees about X and Z.
func randomTilt(rng *rand.Rand) physics.Transform {
	x := (rng.Float64() - 0.5) * 2 * InitialTilt
	z := (rng.Float64() - 0.5) * 2 * InitialTilt
	return physics.Transform{Rotation: physics.Euler(physics.Degrees(x), 0, physics.Degrees(z))}
}

func ballStart(t int) physics.Transform {
	return physics.NewTransform(Spacing*float64(t), BallStartHeight, 0)
}

// Plugin adds the instance state, the generated per-instance systems and the
// publication of reset events.
type Plugin struct {
	// Seed seeds every instance's random stream; 0 picks a random seed.
	Seed uint64
}

// Build implements ecs.Plugin.
func (p Plugin) Build(app *ecs.App) {
	seed := p.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	app.AddStartupSystem(ecs.NewSystem("sim.init", func(w *ecs.World) {
		w.Resources().Add(NewState(w, Instances, seed))
	}))
	registerSimulations(app)
	app.AddSystemTo(ecs.Last, ecs.NewSystem("sim.publish_resets", publishResets))
}

func publishResets(w *ecs.World) {
	s := ecs.Resource[State](w)
	for i := range s.Instances {
		inst := &s.Instances[i]
		if !inst.pending {
			continue
		}
		inst.pending = false
		ecs.Publish(w.Events(), ResetEvent{Instance: i, Resets: inst.Resets, Frame: s.frame})
	}
	s.frame++
}

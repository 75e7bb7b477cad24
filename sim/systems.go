package sim

import (
	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/edwinsyarief/tiltboard/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupPhysics spawns the board and the ball of instance t.
func SetupPhysics(t int) ecs.System {
	return ecs.NewSystem("sim.setup_physics", func(w *ecs.World) {
		s := ecs.Resource[State](w)
		inst := &s.Instances[t]

		board := w.CreateEntity()
		tr := randomTilt(inst.rng)
		tr.Position = mgl64.Vec3{Spacing * float64(t), 0, 0}
		ecs.SetComponent(w, board, tr)
		ecs.SetComponent(w, board, physics.RigidBody{Kind: physics.KinematicPositionBased})
		ecs.SetComponent(w, board, physics.TranslationLocked|physics.RotationLockedY)
		ecs.SetComponent(w, board, physics.Cuboid(BoardHalfX, BoardHalfY, BoardHalfZ))
		ecs.SetComponent(w, board, Board{})
		ecs.SetComponent(w, board, Simulation{Index: t})
		w.Tag(board, t)

		ball := w.CreateEntity()
		ecs.SetComponent(w, ball, ballStart(t))
		ecs.SetComponent(w, ball, physics.RigidBody{Kind: physics.Dynamic})
		ecs.SetComponent(w, ball, physics.Velocity{})
		ecs.SetComponent(w, ball, physics.Ball(BallRadius))
		ecs.SetComponent(w, ball, physics.Restitution{Coefficient: BallRestitution})
		ecs.SetComponent(w, ball, Simulation{Index: t})
		w.Tag(ball, t)
	})
}

// BoardMovement tilts the board of instance t by one step in a random
// direction each frame, unless the board already leans that way by MaxTilt.
func BoardMovement(t int) ecs.System {
	step := physics.Degrees(TiltStep)
	return ecs.NewSystem("sim.board_movement", func(w *ecs.World) {
		s := ecs.Resource[State](w)
		board, ok := s.board(w, t)
		if !ok {
			return
		}
		tr := s.transforms.Get(board)
		rot := tr.Rotation.V
		switch s.Instances[t].rng.IntN(4) {
		case 0:
			if rot.X() < MaxTilt {
				tr.Rotate(physics.Euler(step, 0, 0))
			}
		case 1:
			if rot.X() > -MaxTilt {
				tr.Rotate(physics.Euler(-step, 0, 0))
			}
		case 2:
			if rot.Z() > -MaxTilt {
				tr.Rotate(physics.Euler(0, 0, -step))
			}
		case 3:
			if rot.Z() < MaxTilt {
				tr.Rotate(physics.Euler(0, 0, step))
			}
		}
	}).InGroup(t)
}

// MustReset holds when the ball of instance t fell below ResetHeight.
func MustReset(t int) ecs.Condition {
	return func(w *ecs.World) bool {
		s := ecs.Resource[State](w)
		ball, ok := s.ball(w, t)
		if !ok {
			return false
		}
		return s.transforms.Get(ball).Position.Y() < ResetHeight
	}
}

// ResetSimulation puts the ball of instance t back at its start, at rest, and
// gives the board a new random tilt.
func ResetSimulation(t int) ecs.System {
	return ecs.NewSystem("sim.reset_simulation", func(w *ecs.World) {
		s := ecs.Resource[State](w)
		ball, ok := s.ball(w, t)
		if !ok {
			return
		}
		board, ok := s.board(w, t)
		if !ok {
			return
		}
		inst := &s.Instances[t]

		*s.transforms.Get(ball) = ballStart(t)
		*s.velocities.Get(ball) = physics.Velocity{}
		s.transforms.Get(board).Rotation = randomTilt(inst.rng).Rotation

		inst.Resets++
		inst.pending = true
	}).InGroup(t)
}

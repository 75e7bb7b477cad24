package physics

import (
	"math"
	"testing"

	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

type scene struct {
	world *ecs.World
	ctx   *Context
	ball  ecs.Entity
	board ecs.Entity
}

// newScene builds a ball of radius 0.5 above a 10x0.2x10 board rotated by
// tilt.
func newScene(t *testing.T, ballY float64, tilt mgl64.Quat) *scene {
	t.Helper()
	w := ecs.NewWorld(8)
	s := &scene{world: w, ctx: NewContext(w, DefaultConfig())}

	s.board = w.CreateEntity()
	ecs.SetComponent(w, s.board, NewTransform(0, 0, 0).WithRotation(tilt))
	ecs.SetComponent(w, s.board, RigidBody{Kind: KinematicPositionBased})
	ecs.SetComponent(w, s.board, Cuboid(5, 0.1, 5))

	s.ball = w.CreateEntity()
	ecs.SetComponent(w, s.ball, NewTransform(0, ballY, 0))
	ecs.SetComponent(w, s.ball, RigidBody{Kind: Dynamic})
	ecs.SetComponent(w, s.ball, Velocity{})
	ecs.SetComponent(w, s.ball, Ball(0.5))
	ecs.SetComponent(w, s.ball, Restitution{Coefficient: 0.7})
	return s
}

func (s *scene) run(frames int, members ...ecs.Entity) {
	for range frames {
		s.ctx.Step(members)
	}
}

func (s *scene) ballPos() mgl64.Vec3 {
	return s.ctx.Transforms.Get(s.ball).Position
}

func TestFreeFall(t *testing.T) {
	s := newScene(t, 4.5, mgl64.QuatIdent())
	s.run(60, s.ball) // board not part of the step
	want := 4.5 - 0.5*9.81
	if got := s.ballPos().Y(); math.Abs(got-want) > 0.1 {
		t.Errorf("after 1s of free fall expected y≈%.3f, got %.3f", want, got)
	}
}

func TestBallRestsOnLevelBoard(t *testing.T) {
	s := newScene(t, 4.5, mgl64.QuatIdent())
	s.run(600, s.board, s.ball)
	pos := s.ballPos()
	if math.Abs(pos.Y()-0.6) > 1e-3 {
		t.Errorf("expected ball to rest at y=0.6, got %.4f", pos.Y())
	}
	if math.Abs(pos.X()) > 1e-6 || math.Abs(pos.Z()) > 1e-6 {
		t.Errorf("ball drifted on a level board: %v", pos)
	}
	if v := s.ctx.Velocities.Get(s.ball).Linear.Len(); v > 0.1 {
		t.Errorf("expected ball at rest, speed %.3f", v)
	}
}

func TestBallRollsOffTiltedBoard(t *testing.T) {
	s := newScene(t, 4.5, Euler(0, 0, Degrees(5)))
	s.run(900, s.board, s.ball)
	pos := s.ballPos()
	if pos.Y() > -2 {
		t.Fatalf("expected ball to leave the tilted board and fall, got %v", pos)
	}
	if pos.X() > 0 {
		t.Errorf("expected ball to roll downhill towards -x, got %v", pos)
	}
}

func TestBounceUsesAverageRestitution(t *testing.T) {
	s := newScene(t, 0.65, mgl64.QuatIdent())
	s.ctx.Velocities.Get(s.ball).Linear = mgl64.Vec3{0, -5, 0}
	s.run(1, s.board, s.ball)

	h := s.ctx.Timestep / float64(s.ctx.Substeps)
	impact := 5 + 2*9.81*h
	want := 0.35 * impact
	if got := s.ctx.Velocities.Get(s.ball).Linear.Y(); math.Abs(got-want) > 0.05 {
		t.Errorf("expected rebound speed %.3f, got %.3f", want, got)
	}
}

func TestLockedAxes(t *testing.T) {
	s := newScene(t, 10, mgl64.QuatIdent())
	ecs.SetComponent(s.world, s.ball, TranslationLockedX|TranslationLockedZ)
	s.ctx.Velocities.Get(s.ball).Linear = mgl64.Vec3{3, 0, -2}
	s.run(10, s.ball)
	pos := s.ballPos()
	if pos.X() != 0 || pos.Z() != 0 {
		t.Errorf("locked axes moved: %v", pos)
	}
	if pos.Y() >= 10 {
		t.Errorf("free axis should still fall, got %v", pos)
	}
}

func TestSphereBox(t *testing.T) {
	half := mgl64.Vec3{5, 0.1, 5}
	tests := []struct {
		name      string
		center    mgl64.Vec3
		box       Transform
		wantOK    bool
		wantN     mgl64.Vec3
		wantDepth float64
	}{
		{"above, touching", mgl64.Vec3{0, 0.5, 0}, NewTransform(0, 0, 0), true, mgl64.Vec3{0, 1, 0}, 0.1},
		{"far above", mgl64.Vec3{0, 3, 0}, NewTransform(0, 0, 0), false, mgl64.Vec3{}, 0},
		{"beside", mgl64.Vec3{5.3, 0, 0}, NewTransform(0, 0, 0), true, mgl64.Vec3{1, 0, 0}, 0.2},
		{"inside", mgl64.Vec3{0, 0.05, 0}, NewTransform(0, 0, 0), true, mgl64.Vec3{0, 1, 0}, 0.55},
		{"offset box", mgl64.Vec3{20, 0.5, 0}, NewTransform(20, 0, 0), true, mgl64.Vec3{0, 1, 0}, 0.1},
		{"upside down", mgl64.Vec3{0, -0.5, 0}, NewTransform(0, 0, 0).WithRotation(Euler(math.Pi, 0, 0)), true, mgl64.Vec3{0, -1, 0}, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, depth, ok := sphereBox(tt.center, 0.5, tt.box, half)
			if ok != tt.wantOK {
				t.Fatalf("contact = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if n.Sub(tt.wantN).Len() > 1e-9 {
				t.Errorf("normal = %v, want %v", n, tt.wantN)
			}
			if math.Abs(depth-tt.wantDepth) > 1e-9 {
				t.Errorf("depth = %v, want %v", depth, tt.wantDepth)
			}
		})
	}
}

func TestTransformRotate(t *testing.T) {
	tr := NewTransform(0, 0, 0)
	for range 90 {
		tr.Rotate(Euler(Degrees(1), 0, 0))
	}
	up := tr.Rotation.Rotate(mgl64.Vec3{0, 1, 0})
	if up.Sub(mgl64.Vec3{0, 0, 1}).Len() > 1e-9 {
		t.Errorf("90 one-degree turns about X should map +Y to +Z, got %v", up)
	}
}

func TestPluginRegistersGroups(t *testing.T) {
	app := ecs.NewApp(ecs.NewWorld(4))
	app.AddPlugins(Plugin{Config: DefaultConfig(), Groups: 3})
	if got := len(app.Systems(ecs.PostUpdate)); got != 3 {
		t.Fatalf("expected 3 step systems, got %d", got)
	}
	for g, s := range app.Systems(ecs.PostUpdate) {
		if s.Group != g {
			t.Errorf("system %d has group %d", g, s.Group)
		}
	}
}

package sim

import (
	"context"
	"math"
	"testing"

	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/edwinsyarief/tiltboard/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// newTestApp wires n instances the way the generated registrations do.
func newTestApp(t *testing.T, n int, seed uint64) *ecs.App {
	t.Helper()
	app := ecs.NewApp(ecs.NewWorld(64), ecs.WithWorkers(2))
	app.AddPlugins(physics.Plugin{Config: physics.DefaultConfig(), Groups: n})
	app.AddStartupSystem(ecs.NewSystem("sim.init", func(w *ecs.World) {
		w.Resources().Add(NewState(w, n, seed))
	}))
	for i := range n {
		app.AddStartupSystem(SetupPhysics(i))
		app.AddSystem(BoardMovement(i))
		app.AddSystem(ResetSimulation(i).RunIf(MustReset(i)))
	}
	app.AddSystemTo(ecs.Last, ecs.NewSystem("sim.publish_resets", publishResets))
	if err := app.Startup(context.Background()); err != nil {
		t.Fatal(err)
	}
	return app
}

func TestSetupSpawnsOneBallAndOneBoard(t *testing.T) {
	app := newTestApp(t, 3, 1)
	w := app.World()
	s := ecs.Resource[State](w)

	if got := w.Len(); got != 6 {
		t.Fatalf("expected 6 entities, got %d", got)
	}
	for i := range 3 {
		members := w.Tagged(i)
		if len(members) != 2 {
			t.Fatalf("instance %d: expected 2 tagged entities, got %d", i, len(members))
		}
		ball, ok := s.ball(w, i)
		if !ok {
			t.Fatalf("instance %d: no single ball", i)
		}
		board, ok := s.board(w, i)
		if !ok {
			t.Fatalf("instance %d: no single board", i)
		}
		if got := ecs.GetComponent[Simulation](w, ball).Index; got != i {
			t.Errorf("ball of instance %d carries index %d", i, got)
		}
		if got := ecs.GetComponent[Simulation](w, board).Index; got != i {
			t.Errorf("board of instance %d carries index %d", i, got)
		}

		want := mgl64.Vec3{Spacing * float64(i), BallStartHeight, 0}
		if got := s.transforms.Get(ball).Position; got != want {
			t.Errorf("ball %d at %v, want %v", i, got, want)
		}
		if got := s.transforms.Get(board).Position; got != (mgl64.Vec3{Spacing * float64(i), 0, 0}) {
			t.Errorf("board %d at %v", i, got)
		}
		if rb := ecs.GetComponent[physics.RigidBody](w, board); rb.Kind != physics.KinematicPositionBased {
			t.Errorf("board %d is %v", i, rb.Kind)
		}
		locks := *ecs.GetComponent[physics.LockedAxes](w, board)
		if locks != physics.TranslationLocked|physics.RotationLockedY {
			t.Errorf("board %d locks = %b", i, locks)
		}
		if r := ecs.GetComponent[physics.Restitution](w, ball); r.Coefficient != BallRestitution {
			t.Errorf("ball %d restitution = %v", i, r.Coefficient)
		}

		limit := math.Sin(physics.Degrees(InitialTilt)/2) + 1e-9
		rot := s.transforms.Get(board).Rotation.V
		if math.Abs(rot.X()) > limit || math.Abs(rot.Z()) > limit {
			t.Errorf("board %d initial tilt %v exceeds %.1f degrees", i, rot, InitialTilt)
		}
	}
}

func TestBoardMovementKeepsTiltBounded(t *testing.T) {
	w := ecs.NewWorld(4)
	s := NewState(w, 1, 7)
	w.Resources().Add(s)
	SetupPhysics(0).Run(w)
	move := BoardMovement(0)

	board, _ := s.board(w, 0)
	tr := s.transforms.Get(board)
	// one step past the bound, plus slack for cross-axis coupling
	limit := MaxTilt + math.Sin(physics.Degrees(TiltStep)/2) + 0.05
	for range 5000 {
		move.Run(w)
		rot := tr.Rotation.V
		if math.Abs(rot.X()) > limit || math.Abs(rot.Z()) > limit {
			t.Fatalf("tilt escaped its bound: %v", tr.Rotation)
		}
	}
	if math.Abs(tr.Rotation.Len()-1) > 1e-9 {
		t.Errorf("rotation is no longer a unit quaternion: %v", tr.Rotation.Len())
	}
}

func TestResetRestoresBall(t *testing.T) {
	app := newTestApp(t, 2, 3)
	w := app.World()
	s := ecs.Resource[State](w)

	var events []ResetEvent
	ecs.Subscribe(w.Events(), func(e ResetEvent) { events = append(events, e) })

	ball, _ := s.ball(w, 1)
	s.transforms.Get(ball).Position = mgl64.Vec3{13, -3, 2}
	s.velocities.Get(ball).Linear = mgl64.Vec3{1, -8, 0}
	if err := app.Update(context.Background()); err != nil {
		t.Fatal(err)
	}

	pos := s.transforms.Get(ball).Position
	if pos.X() != Spacing || pos.Z() != 0 || math.Abs(pos.Y()-BallStartHeight) > 0.01 {
		t.Errorf("ball not back at its start: %v", pos)
	}
	if v := s.velocities.Get(ball).Linear; v.X() != 0 || v.Y() < -0.2 {
		t.Errorf("ball velocity not cleared: %v", v)
	}
	if s.Instances[1].Resets != 1 || s.Instances[0].Resets != 0 {
		t.Errorf("reset counts = %d, %d", s.Instances[0].Resets, s.Instances[1].Resets)
	}
	if len(events) != 1 || events[0] != (ResetEvent{Instance: 1, Resets: 1, Frame: 0}) {
		t.Fatalf("unexpected events %+v", events)
	}

	if err := app.Update(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Errorf("reset published twice: %+v", events)
	}
	if s.TotalResets() != 1 {
		t.Errorf("total resets = %d", s.TotalResets())
	}
}

func TestSystemsSkipIncompleteInstance(t *testing.T) {
	app := newTestApp(t, 1, 5)
	w := app.World()
	s := ecs.Resource[State](w)

	ball, _ := s.ball(w, 0)
	w.RemoveEntity(ball)
	if MustReset(0)(w) {
		t.Error("MustReset must be false without a ball")
	}
	ResetSimulation(0).Run(w)
	if s.Instances[0].Resets != 0 {
		t.Error("reset ran without a ball")
	}

	// a second board makes the board lookup ambiguous
	board, _ := s.board(w, 0)
	before := s.transforms.Get(board).Rotation
	extra := w.CreateEntity()
	ecs.SetComponent(w, extra, physics.NewTransform(0, 0, 0))
	ecs.SetComponent(w, extra, Board{})
	w.Tag(extra, 0)
	BoardMovement(0).Run(w)
	if s.transforms.Get(board).Rotation != before {
		t.Error("board moved although the instance has two boards")
	}
}

func TestSameSeedSameBoards(t *testing.T) {
	tilts := func(seed uint64) []mgl64.Quat {
		app := newTestApp(t, 4, seed)
		for range 30 {
			if err := app.Update(context.Background()); err != nil {
				t.Fatal(err)
			}
		}
		var out []mgl64.Quat
		for _, st := range Snapshot(app.World(), nil) {
			out = append(out, mgl64.Quat{V: mgl64.Vec3{st.TiltX, 0, st.TiltZ}})
		}
		return out
	}
	a, b := tilts(42), tilts(42)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("instance %d diverged: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSnapshot(t *testing.T) {
	if got := Snapshot(ecs.NewWorld(1), nil); len(got) != 0 {
		t.Errorf("expected no statuses without state, got %d", len(got))
	}
	app := newTestApp(t, 2, 9)
	got := Snapshot(app.World(), nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(got))
	}
	for i, st := range got {
		if st.Index != i || st.BallHeight != BallStartHeight {
			t.Errorf("status %d = %+v", i, st)
		}
	}
}

func TestPluginRegistersEveryInstance(t *testing.T) {
	app := ecs.NewApp(ecs.NewWorld(1))
	app.AddPlugins(Plugin{Seed: 1})

	if got := len(app.Systems(ecs.Startup)); got != Instances+1 {
		t.Errorf("expected %d startup systems, got %d", Instances+1, got)
	}
	update := app.Systems(ecs.Update)
	if len(update) != 2*Instances {
		t.Fatalf("expected %d update systems, got %d", 2*Instances, len(update))
	}
	for i := 0; i < len(update); i += 2 {
		move, reset := update[i], update[i+1]
		if move.Group != i/2 || reset.Group != i/2 {
			t.Fatalf("pair %d is in groups %d and %d", i/2, move.Group, reset.Group)
		}
		if move.Cond != nil || reset.Cond == nil {
			t.Fatalf("pair %d: only the reset system is gated", i/2)
		}
	}
	if got := len(app.Systems(ecs.Last)); got != 1 {
		t.Errorf("expected the reset publisher in Last, got %d systems", got)
	}
}

func BenchmarkFrame(b *testing.B) {
	app := ecs.NewApp(ecs.NewWorld(2 * Instances))
	app.AddPlugins(physics.Plugin{Config: physics.DefaultConfig(), Groups: Instances}, Plugin{Seed: 1})
	ctx := context.Background()
	if err := app.Startup(ctx); err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		if err := app.Update(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

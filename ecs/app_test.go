package ecs_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/edwinsyarief/tiltboard/ecs"
)

func TestAppStartupRunsOnce(t *testing.T) {
	app := ecs.NewApp(ecs.NewWorld(4))
	runs := 0
	app.AddStartupSystem(ecs.NewSystem("count", func(*ecs.World) { runs++ }))
	ctx := context.Background()
	for range 3 {
		if err := app.Update(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if runs != 1 {
		t.Errorf("expected startup to run once, ran %d", runs)
	}
	if app.Frame() != 3 {
		t.Errorf("expected frame 3, got %d", app.Frame())
	}
}

func TestAppStageOrder(t *testing.T) {
	app := ecs.NewApp(ecs.NewWorld(4))
	var order []string
	add := func(stage ecs.Stage, name string) {
		app.AddSystemTo(stage, ecs.NewSystem(name, func(*ecs.World) { order = append(order, name) }))
	}
	add(ecs.Last, "last")
	add(ecs.PostUpdate, "post")
	add(ecs.Update, "update")
	add(ecs.PreUpdate, "pre")
	add(ecs.Startup, "startup")
	if err := app.Update(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := []string{"startup", "pre", "update", "post", "last"}
	if !slices.Equal(order, want) {
		t.Errorf("expected %v, got %v", want, order)
	}
}

func TestAppRunIf(t *testing.T) {
	app := ecs.NewApp(ecs.NewWorld(4))
	gate := false
	runs := 0
	app.AddSystem(ecs.NewSystem("gated", func(*ecs.World) { runs++ }).
		RunIf(func(*ecs.World) bool { return gate }))
	ctx := context.Background()

	if err := app.Update(ctx); err != nil {
		t.Fatal(err)
	}
	if runs != 0 {
		t.Fatalf("gated system ran with a false condition")
	}
	gate = true
	if err := app.Update(ctx); err != nil {
		t.Fatal(err)
	}
	if runs != 1 {
		t.Fatalf("expected 1 run, got %d", runs)
	}

	t.Run("conditions stack", func(t *testing.T) {
		s := ecs.NewSystem("s", func(*ecs.World) {}).
			RunIf(func(*ecs.World) bool { return true }).
			RunIf(func(*ecs.World) bool { return false })
		if s.Cond(nil) {
			t.Error("stacked conditions must all hold")
		}
	})
}

func TestAppGroupsRunInParallelWithOrderedMembers(t *testing.T) {
	const groups = 64
	w := ecs.NewWorld(groups)
	app := ecs.NewApp(w, ecs.WithWorkers(8))

	var mu sync.Mutex
	seen := make(map[int][]string)
	for g := range groups {
		for _, name := range []string{"a", "b", "c"} {
			app.AddSystem(ecs.NewSystem(name, func(*ecs.World) {
				mu.Lock()
				seen[g] = append(seen[g], name)
				mu.Unlock()
			}).InGroup(g))
		}
	}
	if err := app.Update(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(seen) != groups {
		t.Fatalf("expected %d groups to run, got %d", groups, len(seen))
	}
	for g, names := range seen {
		if !slices.Equal(names, []string{"a", "b", "c"}) {
			t.Errorf("group %d ran out of order: %v", g, names)
		}
	}
}

func TestAppUngroupedRunBeforeGroups(t *testing.T) {
	app := ecs.NewApp(ecs.NewWorld(4))
	var global atomic.Int32
	var sawGlobal atomic.Bool
	app.AddSystem(ecs.NewSystem("grouped", func(*ecs.World) {
		sawGlobal.Store(global.Load() == 1)
	}).InGroup(0))
	app.AddSystem(ecs.NewSystem("global", func(*ecs.World) { global.Add(1) }))
	if err := app.Update(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !sawGlobal.Load() {
		t.Error("ungrouped systems should run before grouped ones")
	}
}

func TestAppFrozenWorld(t *testing.T) {
	w := ecs.NewWorld(4)
	app := ecs.NewApp(w)
	app.AddSystem(ecs.NewSystem("spawner", func(w *ecs.World) { w.CreateEntity() }).InGroup(1))
	err := app.Update(context.Background())
	if !errors.Is(err, ecs.ErrSystemPanic) {
		t.Fatalf("expected ErrSystemPanic, got %v", err)
	}
	// the world is usable again once the stage is over
	w.CreateEntity()
}

func TestAppRunFrames(t *testing.T) {
	app := ecs.NewApp(ecs.NewWorld(4))
	frames := 0
	app.AddSystem(ecs.NewSystem("count", func(*ecs.World) { frames++ }))
	if err := app.Run(context.Background(), ecs.RunConfig{Frames: 5}); err != nil {
		t.Fatal(err)
	}
	if frames != 5 {
		t.Errorf("expected 5 frames, got %d", frames)
	}
}

func TestAppRunCancel(t *testing.T) {
	app := ecs.NewApp(ecs.NewWorld(4))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := app.Run(ctx, ecs.RunConfig{TickRate: 1000})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if app.Frame() == 0 {
		t.Error("expected some frames before the deadline")
	}
}

func TestAppPlugins(t *testing.T) {
	app := ecs.NewApp(ecs.NewWorld(4))
	app.AddPlugins(ecs.PluginFunc(func(a *ecs.App) {
		a.AddStartupSystem(ecs.NewSystem("setup", func(w *ecs.World) {
			w.Resources().Add(&Health{Max: 3})
		}))
	}))
	if err := app.Startup(context.Background()); err != nil {
		t.Fatal(err)
	}
	if h := ecs.Resource[Health](app.World()); h.Max != 3 {
		t.Errorf("expected resource from plugin, got %+v", h)
	}
	if got := len(app.Systems(ecs.Startup)); got != 1 {
		t.Errorf("expected 1 startup system, got %d", got)
	}
}

package ecs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrSystemPanic wraps a panic raised by a system run in parallel.
var ErrSystemPanic = errors.New("ecs: system panicked")

// Stage selects when a system runs.
type Stage uint8

const (
	// Startup systems run once, sequentially, before the first frame.
	Startup Stage = iota
	PreUpdate
	Update
	PostUpdate
	// Last runs after everything else in a frame.
	Last
	numStages
)

func (s Stage) String() string {
	switch s {
	case Startup:
		return "startup"
	case PreUpdate:
		return "pre-update"
	case Update:
		return "update"
	case PostUpdate:
		return "post-update"
	case Last:
		return "last"
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// Condition decides, once per frame, whether a gated system runs.
type Condition func(w *World) bool

// System is a unit of behavior run by an App.
//
// Systems in the same non-negative Group run one after another in
// registration order; different groups run in parallel. A grouped system must
// only touch entities tagged with its group and must not change the world's
// structure.
type System struct {
	Name  string
	Run   func(w *World)
	Cond  Condition
	Group int
}

// NewSystem returns an ungrouped system.
func NewSystem(name string, run func(w *World)) System {
	return System{Name: name, Run: run, Group: NoGroup}
}

// InGroup returns a copy of s assigned to group.
func (s System) InGroup(group int) System {
	s.Group = group
	return s
}

// RunIf returns a copy of s that only runs when cond holds. Conditions stack:
// every one of them must hold.
func (s System) RunIf(cond Condition) System {
	if prev := s.Cond; prev != nil {
		s.Cond = func(w *World) bool { return prev(w) && cond(w) }
		return s
	}
	s.Cond = cond
	return s
}

func (s System) run(w *World) {
	if s.Cond != nil && !s.Cond(w) {
		return
	}
	s.Run(w)
}

// Plugin bundles related registrations.
type Plugin interface {
	Build(app *App)
}

// PluginFunc adapts a function to a Plugin.
type PluginFunc func(app *App)

func (f PluginFunc) Build(app *App) { f(app) }

// plan is the execution layout of one stage.
type plan struct {
	ungrouped []System
	groups    [][]System
}

// App owns a World and the systems that drive it.
type App struct {
	world   *World
	logger  *slog.Logger
	systems [numStages][]System
	plans   [numStages]*plan
	workers int
	frame   uint64
	started bool
}

// Option configures an App.
type Option func(*App)

// WithWorkers bounds the number of goroutines running groups in parallel.
// Values below 1 mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(a *App) { a.workers = n }
}

// WithLogger sets the logger used by the scheduler.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// NewApp creates an App driving w.
func NewApp(w *World, opts ...Option) *App {
	a := &App{world: w, logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	if a.workers < 1 {
		a.workers = runtime.GOMAXPROCS(0)
	}
	return a
}

// World returns the app's world.
func (a *App) World() *World { return a.world }

// Frame returns the number of completed frames.
func (a *App) Frame() uint64 { return a.frame }

// AddPlugins builds each plugin in order.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		p.Build(a)
	}
	return a
}

// AddStartupSystem registers s to run once before the first frame.
func (a *App) AddStartupSystem(s System) *App {
	return a.AddSystemTo(Startup, s)
}

// AddSystem registers s to run every frame in the Update stage.
func (a *App) AddSystem(s System) *App {
	return a.AddSystemTo(Update, s)
}

// AddSystemTo registers s in stage.
func (a *App) AddSystemTo(stage Stage, s System) *App {
	if stage >= numStages {
		panic(fmt.Sprintf("ecs: unknown stage %d", stage))
	}
	if s.Run == nil {
		panic("ecs: system " + s.Name + " has no Run func")
	}
	a.systems[stage] = append(a.systems[stage], s)
	a.plans[stage] = nil
	return a
}

// Systems returns the systems registered in stage, in registration order.
func (a *App) Systems(stage Stage) []System {
	return a.systems[stage]
}

// Startup runs the startup systems once. Later calls do nothing.
func (a *App) Startup(ctx context.Context) error {
	if a.started {
		return nil
	}
	for _, s := range a.systems[Startup] {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.run(a.world)
	}
	a.started = true
	a.logger.DebugContext(ctx, "startup complete",
		"systems", len(a.systems[Startup]),
		"entities", a.world.Len(),
		"groups", len(a.world.tags.members))
	return nil
}

// Update runs one frame, running Startup first if it has not run yet.
func (a *App) Update(ctx context.Context) error {
	if err := a.Startup(ctx); err != nil {
		return err
	}
	for stage := PreUpdate; stage < numStages; stage++ {
		if err := a.runStage(ctx, stage); err != nil {
			return fmt.Errorf("%s stage: %w", stage, err)
		}
	}
	a.frame++
	return nil
}

// RunConfig controls App.Run.
type RunConfig struct {
	// TickRate is the number of frames per second; 0 runs unthrottled.
	TickRate float64
	// Frames stops the loop after that many frames; 0 runs until ctx is done.
	Frames uint64
}

// Run runs startup and then frames until ctx is done or cfg.Frames frames have
// completed. It returns ctx.Err() when cancelled.
func (a *App) Run(ctx context.Context, cfg RunConfig) error {
	if err := a.Startup(ctx); err != nil {
		return err
	}
	var tick <-chan time.Time
	if cfg.TickRate > 0 {
		ticker := time.NewTicker(time.Duration(float64(time.Second) / cfg.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}
	for cfg.Frames == 0 || a.frame < cfg.Frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.Update(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) plan(stage Stage) *plan {
	if p := a.plans[stage]; p != nil {
		return p
	}
	p := &plan{}
	index := make(map[int]int)
	for _, s := range a.systems[stage] {
		if s.Group < 0 {
			p.ungrouped = append(p.ungrouped, s)
			continue
		}
		i, ok := index[s.Group]
		if !ok {
			i = len(p.groups)
			index[s.Group] = i
			p.groups = append(p.groups, nil)
		}
		p.groups[i] = append(p.groups[i], s)
	}
	a.plans[stage] = p
	return p
}

func (a *App) runStage(ctx context.Context, stage Stage) error {
	p := a.plan(stage)
	for _, s := range p.ungrouped {
		s.run(a.world)
	}
	if len(p.groups) == 0 {
		return nil
	}

	a.world.freeze()
	defer a.world.thaw()

	workers := min(a.workers, len(p.groups))
	per := (len(p.groups) + workers - 1) / workers
	eg, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(p.groups); start += per {
		batch := p.groups[start:min(start+per, len(p.groups))]
		eg.Go(func() error {
			for _, group := range batch {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := a.runGroup(group); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}

func (a *App) runGroup(systems []System) (err error) {
	var current System
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s (group %d): %v", ErrSystemPanic, current.Name, current.Group, r)
		}
	}()
	for _, s := range systems {
		current = s
		s.run(a.world)
	}
	return nil
}

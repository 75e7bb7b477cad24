package physics

import "github.com/edwinsyarief/tiltboard/ecs"

// Plugin adds the physics resource and one step system per group.
type Plugin struct {
	Config Config
	// Groups is the number of tag groups to step, [0, Groups).
	Groups int
}

// Build implements ecs.Plugin.
func (p Plugin) Build(app *ecs.App) {
	cfg := p.Config
	app.AddStartupSystem(ecs.NewSystem("physics.init", func(w *ecs.World) {
		w.Resources().Add(NewContext(w, cfg))
	}))
	for g := range p.Groups {
		app.AddSystemTo(ecs.PostUpdate, StepGroup(g))
	}
}

// StepGroup returns the system stepping the bodies tagged with group.
func StepGroup(group int) ecs.System {
	return ecs.NewSystem("physics.step", func(w *ecs.World) {
		ecs.Resource[Context](w).Step(w.Tagged(group))
	}).InGroup(group)
}

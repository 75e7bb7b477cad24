// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/edwinsyarief/tiltboard/physics"
	"github.com/edwinsyarief/tiltboard/sim"
	"github.com/pkg/profile"
)

func main() {
	rounds := 20
	iters := 200
	instances := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, instances)
	p.Stop()
}

// run spawns and despawns tagged balls, the structural churn a reset-by-respawn
// design would cause.
func run(rounds, iters, instances int) {
	for range rounds {
		w := ecs.NewWorld(instances)
		balls := ecs.NewBuilder[physics.Transform](w)
		query := ecs.NewFilter2[physics.Transform, physics.Velocity](w)

		for range iters {
			for i, e := range balls.NewEntities(instances) {
				ecs.SetComponent(w, e, physics.Velocity{})
				ecs.SetComponent(w, e, sim.Simulation{Index: i})
				w.Tag(e, i)
			}
			entities := []ecs.Entity{}
			query.Reset()
			for query.Next() {
				entities = append(entities, query.Entity())
				tr, vel := query.Get()
				tr.Position = tr.Position.Add(vel.Linear)
			}
			for _, e := range entities {
				w.RemoveEntity(e)
			}
		}
	}
}

// Profiling:
// go build ./profile/simulation
// ./simulation -mode cpu -frames 600
// go tool pprof -http=":8000" -nodefraction=0.001 ./simulation cpu.pprof

package main

import (
	"context"
	"flag"
	"log"

	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/edwinsyarief/tiltboard/physics"
	"github.com/edwinsyarief/tiltboard/sim"
	"github.com/pkg/profile"
)

func main() {
	mode := flag.String("mode", "cpu", "profile mode: cpu or mem")
	frames := flag.Uint64("frames", 600, "frames to simulate")
	workers := flag.Int("workers", 0, "parallel groups (0 uses GOMAXPROCS)")
	flag.Parse()

	var p interface{ Stop() }
	switch *mode {
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
	err := run(*frames, *workers)
	p.Stop()
	if err != nil {
		log.Fatal(err)
	}
}

func run(frames uint64, workers int) error {
	app := ecs.NewApp(ecs.NewWorld(2*sim.Instances), ecs.WithWorkers(workers))
	app.AddPlugins(
		physics.Plugin{Config: physics.DefaultConfig(), Groups: sim.Instances},
		sim.Plugin{Seed: 1},
	)
	return app.Run(context.Background(), ecs.RunConfig{Frames: frames})
}

// Command tiltboard runs every board and ball simulation until interrupted.
//
// Settings come from TILTBOARD_* environment variables; the flags below
// override some of them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/edwinsyarief/tiltboard/audio"
	"github.com/edwinsyarief/tiltboard/config"
	"github.com/edwinsyarief/tiltboard/diagnostics"
	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/edwinsyarief/tiltboard/physics"
	"github.com/edwinsyarief/tiltboard/sim"
	"github.com/edwinsyarief/tiltboard/view"
	"github.com/pkg/profile"
)

func main() {
	var (
		viewFlag  = flag.Bool("view", false, "draw the simulations in the terminal")
		soundFlag = flag.Bool("sound", false, "chime when a simulation resets")
		frames    = flag.Uint64("frames", 0, "stop after this many frames (0 runs until interrupted)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("tiltboard: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "view":
			cfg.View = *viewFlag
		case "sound":
			cfg.Sound = *soundFlag
		case "frames":
			cfg.Frames = *frames
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = withLogOutput(cfg, func(logOut io.Writer) error {
		return run(ctx, cfg, logOut)
	})
	stop()
	if err != nil {
		config.Exitf("tiltboard: %v", err)
	}
}

// withLogOutput calls fn with the log destination: stderr, or cfg.LogFile
// while the viewer owns the terminal. The file is closed before it returns.
func withLogOutput(cfg config.Config, fn func(io.Writer) error) error {
	if !cfg.View {
		return fn(os.Stderr)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	err = fn(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close log file: %w", cerr)
	}
	return err
}

func run(ctx context.Context, cfg config.Config, logOut io.Writer) error {
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	switch cfg.Profile {
	case config.ProfileCPU:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case config.ProfileMem:
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	app := ecs.NewApp(ecs.NewWorld(2*sim.Instances), ecs.WithWorkers(cfg.Workers), ecs.WithLogger(logger))
	app.AddPlugins(
		physics.Plugin{Config: physics.DefaultConfig(), Groups: sim.Instances},
		sim.Plugin{Seed: cfg.Seed},
		diagnostics.Plugin{Interval: cfg.LogInterval, Logger: logger},
	)

	if cfg.Sound {
		chime, err := audio.New()
		if err != nil {
			logger.WarnContext(ctx, "audio disabled", "err", err)
		} else {
			defer chime.Close()
			app.AddPlugins(chime.Plugin())
		}
	}

	if cfg.View {
		v, err := view.New()
		if err != nil {
			return err
		}
		defer v.Close()
		app.AddPlugins(v.Plugin())

		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		go func() {
			select {
			case <-v.Quit():
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	logger.InfoContext(ctx, "tiltboard started",
		"instances", sim.Instances,
		"tick_rate", cfg.TickRate,
		"frames", cfg.Frames,
		"view", cfg.View,
		"sound", cfg.Sound)

	err := app.Run(ctx, ecs.RunConfig{TickRate: cfg.TickRate, Frames: cfg.Frames})
	var resets uint64
	if stats, _ := ecs.GetResource[diagnostics.FrameStats](app.World().Resources()); stats != nil {
		resets = stats.TotalResets
	}
	logger.InfoContext(context.WithoutCancel(ctx), "tiltboard stopped",
		"frames", app.Frame(),
		"resets", resets)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Command generate writes the per-instance system registrations of package
// sim.
//
// Usage (from go:generate in package sim):
//
//	go run ../cmd/generate -target app -o simulations_generated.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/edwinsyarief/tiltboard/gen"
)

func main() {
	cfg := gen.DefaultConfig()
	if pkg := os.Getenv("GOPACKAGE"); pkg != "" {
		cfg.Package = pkg
	}
	out := "simulations_generated.go"

	flag.IntVar(&cfg.N, "n", cfg.N, "number of simulation instances")
	flag.StringVar(&cfg.Target, "target", cfg.Target, "registration target expression")
	flag.StringVar(&cfg.Func, "func", cfg.Func, "name of the generated function")
	flag.StringVar(&cfg.Package, "pkg", cfg.Package, "package of the generated file")
	flag.StringVar(&cfg.Template.Setup, "setup", cfg.Template.Setup, "startup system factory")
	flag.StringVar(&cfg.Template.Update, "update", cfg.Template.Update, "per-frame system factory")
	flag.StringVar(&cfg.Template.Reset, "reset", cfg.Template.Reset, "reset system factory")
	flag.StringVar(&cfg.Template.Predicate, "predicate", cfg.Template.Predicate, "reset condition factory")
	flag.StringVar(&out, "o", out, "output file")
	flag.Parse()

	if err := run(cfg, out); err != nil {
		slog.Error("generate failed", "err", err)
		os.Exit(1)
	}
	slog.Info("generated registrations", "file", out, "instances", cfg.N, "target", cfg.Target)
}

func run(cfg gen.Config, out string) error {
	src, err := gen.Expand(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}

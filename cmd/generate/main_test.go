package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edwinsyarief/tiltboard/gen"
)

func TestRunWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "simulations_generated.go")
	cfg := gen.DefaultConfig()
	cfg.N = 4
	if err := run(cfg, out); err != nil {
		t.Fatal(err)
	}
	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(src), ".AddStartupSystem("); got != 4 {
		t.Errorf("expected 4 setup registrations, got %d", got)
	}
}

func TestRunLeavesNothingOnError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "simulations_generated.go")
	cfg := gen.DefaultConfig()
	cfg.Target = "app +"
	if err := run(cfg, out); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output must not be written on error, stat err = %v", err)
	}
}

package config

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		TickRate:    60,
		LogInterval: 5 * time.Second,
		LogLevel:    slog.LevelInfo,
		LogFile:     "tiltboard.log",
	}
	if cfg != want {
		t.Fatalf("defaults = %+v, want %+v", cfg, want)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TILTBOARD_TICK_RATE", "0")
	t.Setenv("TILTBOARD_FRAMES", "600")
	t.Setenv("TILTBOARD_WORKERS", "4")
	t.Setenv("TILTBOARD_SEED", "42")
	t.Setenv("TILTBOARD_LOG_INTERVAL", "250ms")
	t.Setenv("TILTBOARD_LOG_LEVEL", "debug")
	t.Setenv("TILTBOARD_VIEW", "true")
	t.Setenv("TILTBOARD_SOUND", "true")
	t.Setenv("TILTBOARD_PROFILE", "cpu")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TickRate != 0 || cfg.Frames != 600 || cfg.Workers != 4 || cfg.Seed != 42 {
		t.Errorf("numbers not parsed: %+v", cfg)
	}
	if cfg.LogInterval != 250*time.Millisecond || cfg.LogLevel != slog.LevelDebug {
		t.Errorf("logging not parsed: %+v", cfg)
	}
	if !cfg.View || !cfg.Sound || cfg.Profile != ProfileCPU {
		t.Errorf("switches not parsed: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, key, value string
		invalid          bool
	}{
		{"bad int", "TILTBOARD_WORKERS", "many", false},
		{"bad duration", "TILTBOARD_LOG_INTERVAL", "soon", false},
		{"bad level", "TILTBOARD_LOG_LEVEL", "loud", false},
		{"negative tick rate", "TILTBOARD_TICK_RATE", "-1", true},
		{"negative workers", "TILTBOARD_WORKERS", "-2", true},
		{"zero interval", "TILTBOARD_LOG_INTERVAL", "0s", true},
		{"unknown profile", "TILTBOARD_PROFILE", "block", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.invalid != errors.Is(err, ErrInvalid) {
				t.Fatalf("errors.Is(err, ErrInvalid) = %v for %v", !tt.invalid, err)
			}
			if !tt.invalid && !strings.Contains(err.Error(), "parse env:") {
				t.Fatalf("expected parse env prefix, got %v", err)
			}
		})
	}
}

// Package config loads the demo settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Profile modes accepted by TILTBOARD_PROFILE.
const (
	ProfileNone = ""
	ProfileCPU  = "cpu"
	ProfileMem  = "mem"
)

// ErrInvalid is wrapped by Load when a value parses but makes no sense.
var ErrInvalid = errors.New("invalid config")

// Config holds the runtime settings of cmd/tiltboard.
type Config struct {
	// TickRate is the frame rate; 0 runs as fast as possible.
	TickRate float64 `env:"TILTBOARD_TICK_RATE" envDefault:"60"`
	// Frames stops the demo after that many frames; 0 runs until interrupted.
	Frames uint64 `env:"TILTBOARD_FRAMES" envDefault:"0"`
	// Workers bounds parallel system groups; 0 uses GOMAXPROCS.
	Workers int `env:"TILTBOARD_WORKERS" envDefault:"0"`
	// Seed seeds the instances' random streams; 0 picks one at random.
	Seed        uint64        `env:"TILTBOARD_SEED" envDefault:"0"`
	LogInterval time.Duration `env:"TILTBOARD_LOG_INTERVAL" envDefault:"5s"`
	LogLevel    slog.Level    `env:"TILTBOARD_LOG_LEVEL" envDefault:"info"`
	// LogFile receives logs while the viewer owns the terminal.
	LogFile string `env:"TILTBOARD_LOG_FILE" envDefault:"tiltboard.log"`
	View    bool   `env:"TILTBOARD_VIEW" envDefault:"false"`
	Sound   bool   `env:"TILTBOARD_SOUND" envDefault:"false"`
	Profile string `env:"TILTBOARD_PROFILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values outside their domain.
func (c Config) Validate() error {
	switch {
	case c.TickRate < 0:
		return fmt.Errorf("%w: tick rate %v is negative", ErrInvalid, c.TickRate)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d is negative", ErrInvalid, c.Workers)
	case c.LogInterval <= 0:
		return fmt.Errorf("%w: log interval %v must be positive", ErrInvalid, c.LogInterval)
	}
	switch c.Profile {
	case ProfileNone, ProfileCPU, ProfileMem:
	default:
		return fmt.Errorf("%w: profile %q (want %q or %q)", ErrInvalid, c.Profile, ProfileCPU, ProfileMem)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/edwinsyarief/tiltboard/config"
)

func testConfig() config.Config {
	return config.Config{
		Frames:      5,
		Seed:        1,
		LogInterval: time.Hour,
	}
}

func TestRunStopsAfterFrames(t *testing.T) {
	var buf bytes.Buffer
	if err := run(context.Background(), testConfig(), &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "tiltboard started") {
		t.Errorf("missing start record:\n%s", out)
	}
	if !strings.Contains(out, "tiltboard stopped") || !strings.Contains(out, "frames=5") {
		t.Errorf("missing stop record after 5 frames:\n%s", out)
	}
}

func TestRunCancelled(t *testing.T) {
	cfg := testConfig()
	cfg.Frames = 0
	cfg.TickRate = 60
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	var buf bytes.Buffer
	if err := run(ctx, cfg, &buf); err != nil && err != context.DeadlineExceeded {
		t.Fatalf("unexpected error %v", err)
	}
	if !strings.Contains(buf.String(), "tiltboard stopped") {
		t.Errorf("missing stop record:\n%s", buf.String())
	}
}

func TestLogFileClosedOnError(t *testing.T) {
	cfg := testConfig()
	cfg.View = true
	cfg.LogFile = filepath.Join(t.TempDir(), "tiltboard.log")

	failure := errors.New("viewer unavailable")
	var out io.Writer
	err := withLogOutput(cfg, func(w io.Writer) error {
		out = w
		_, _ = io.WriteString(w, "started\n")
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("expected the run error, got %v", err)
	}
	if _, err := io.WriteString(out, "late\n"); !errors.Is(err, os.ErrClosed) {
		t.Errorf("log file still open after return: write err = %v", err)
	}
	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "started\n" {
		t.Errorf("log file holds %q", data)
	}
}

func TestLogOutputWithoutViewer(t *testing.T) {
	cfg := testConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "tiltboard.log")
	err := withLogOutput(cfg, func(w io.Writer) error {
		if w != os.Stderr {
			t.Errorf("expected stderr, got %T", w)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(cfg.LogFile); !os.IsNotExist(err) {
		t.Errorf("log file must not be created without the viewer: %v", err)
	}
}

// Package diagnostics measures frame times and logs a periodic summary.
package diagnostics

import (
	"context"
	"log/slog"
	"time"

	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/edwinsyarief/tiltboard/sim"
)

// Report summarizes the frames of one logging interval.
type Report struct {
	Frames    uint64
	FPS       float64
	MeanFrame time.Duration
	MaxFrame  time.Duration
	// Resets counts the resets of the interval, TotalResets all of them.
	Resets      uint64
	TotalResets uint64
}

// FrameStats is the resource accumulating frame times between reports.
type FrameStats struct {
	TotalFrames uint64
	TotalResets uint64
	Last        Report

	frames      uint64
	resets      uint64
	sum, max    time.Duration
	prev        time.Time
	windowStart time.Time
}

func (s *FrameStats) record(now time.Time) {
	if s.prev.IsZero() {
		s.prev, s.windowStart = now, now
		return
	}
	d := now.Sub(s.prev)
	s.prev = now
	s.frames++
	s.TotalFrames++
	s.sum += d
	s.max = max(s.max, d)
}

func (s *FrameStats) flush(now time.Time) Report {
	r := Report{
		Frames:      s.frames,
		MaxFrame:    s.max,
		Resets:      s.resets,
		TotalResets: s.TotalResets,
	}
	if s.frames > 0 {
		r.MeanFrame = s.sum / time.Duration(s.frames)
	}
	if elapsed := now.Sub(s.windowStart); elapsed > 0 {
		r.FPS = float64(s.frames) / elapsed.Seconds()
	}
	s.frames, s.resets, s.sum, s.max = 0, 0, 0, 0
	s.windowStart = now
	s.Last = r
	return r
}

// Plugin records frame times in the Last stage and logs a Report every
// Interval.
type Plugin struct {
	Interval time.Duration
	Logger   *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Build implements ecs.Plugin.
func (p Plugin) Build(app *ecs.App) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := p.Now
	if now == nil {
		now = time.Now
	}
	interval := p.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	app.AddStartupSystem(ecs.NewSystem("diagnostics.init", func(w *ecs.World) {
		stats := &FrameStats{}
		w.Resources().Add(stats)
		ecs.Subscribe(w.Events(), func(sim.ResetEvent) {
			stats.resets++
			stats.TotalResets++
		})
	}))
	app.AddSystemTo(ecs.Last, ecs.NewSystem("diagnostics.frame", func(w *ecs.World) {
		stats := ecs.Resource[FrameStats](w)
		t := now()
		stats.record(t)
		if t.Sub(stats.windowStart) < interval {
			return
		}
		r := stats.flush(t)
		logger.LogAttrs(context.Background(), slog.LevelInfo, "frame stats",
			slog.Uint64("frames", r.Frames),
			slog.Float64("fps", r.FPS),
			slog.Duration("mean_frame", r.MeanFrame),
			slog.Duration("max_frame", r.MaxFrame),
			slog.Uint64("resets", r.Resets),
			slog.Uint64("total_resets", r.TotalResets),
			slog.Int("entities", w.Len()),
		)
	}))
}

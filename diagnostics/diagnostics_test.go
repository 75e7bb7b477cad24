package diagnostics

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/edwinsyarief/tiltboard/sim"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestPluginLogsEveryInterval(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{t: time.Unix(1000, 0)}
	app := ecs.NewApp(ecs.NewWorld(1))
	app.AddPlugins(Plugin{
		Interval: time.Second,
		Logger:   slog.New(slog.NewJSONHandler(&buf, nil)),
		Now:      clock.now,
	})
	// emits one reset per frame from frame 3 on
	app.AddSystemTo(ecs.Update, ecs.NewSystem("test.resets", func(w *ecs.World) {
		if clock.t.Sub(time.Unix(1000, 0)) >= 300*time.Millisecond {
			ecs.Publish(w.Events(), sim.ResetEvent{})
		}
	}))

	ctx := context.Background()
	for range 21 {
		if err := app.Update(ctx); err != nil {
			t.Fatal(err)
		}
		clock.t = clock.t.Add(100 * time.Millisecond)
	}

	var records []map[string]any
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var rec map[string]any
		if err := dec.Decode(&rec); err != nil {
			t.Fatal(err)
		}
		records = append(records, rec)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 reports over 2s, got %d: %v", len(records), records)
	}
	first := records[0]
	if first["msg"] != "frame stats" {
		t.Errorf("unexpected message %v", first["msg"])
	}
	if first["frames"] != float64(10) || first["fps"] != float64(10) {
		t.Errorf("first report frames=%v fps=%v", first["frames"], first["fps"])
	}
	if first["mean_frame"] != float64(100*time.Millisecond) {
		t.Errorf("mean frame = %v", first["mean_frame"])
	}

	stats := ecs.Resource[FrameStats](app.World())
	if stats.TotalFrames != 20 {
		t.Errorf("total frames = %d", stats.TotalFrames)
	}
	if stats.TotalResets != 18 {
		t.Errorf("total resets = %d", stats.TotalResets)
	}
	if stats.Last.Resets != 10 || stats.Last.TotalResets != 18 {
		t.Errorf("last report = %+v", stats.Last)
	}
}

func TestFlushWithoutFrames(t *testing.T) {
	var s FrameStats
	start := time.Unix(0, 0)
	s.record(start)
	r := s.flush(start.Add(time.Second))
	if r.Frames != 0 || r.FPS != 0 || r.MeanFrame != 0 {
		t.Errorf("empty window report = %+v", r)
	}
}

func TestFrameStatsTracksMax(t *testing.T) {
	var s FrameStats
	now := time.Unix(0, 0)
	for _, d := range []time.Duration{0, 10, 50, 20} {
		now = now.Add(d * time.Millisecond)
		s.record(now)
	}
	r := s.flush(now)
	if r.Frames != 3 || r.MaxFrame != 50*time.Millisecond {
		t.Errorf("report = %+v", r)
	}
	if r.MeanFrame != 80*time.Millisecond/3 {
		t.Errorf("mean = %v", r.MeanFrame)
	}
}

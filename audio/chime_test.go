package audio

import (
	"context"
	"testing"
	"time"

	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/edwinsyarief/tiltboard/sim"
	"github.com/gopxl/beep"
)

type recorder struct {
	streams []beep.Streamer
}

func (r *recorder) play(s beep.Streamer) { r.streams = append(r.streams, s) }

func TestRingIsRateLimited(t *testing.T) {
	rec := &recorder{}
	now := time.Unix(0, 0)
	c := newChime(rec.play, func() time.Time { return now })

	steps := []struct {
		advance time.Duration
		want    bool
	}{
		{0, true},
		{50 * time.Millisecond, false},
		{100 * time.Millisecond, false},
		{50 * time.Millisecond, true},
		{199 * time.Millisecond, false},
		{time.Second, true},
	}
	for i, s := range steps {
		now = now.Add(s.advance)
		if got := c.Ring(); got != s.want {
			t.Errorf("step %d: Ring() = %v, want %v", i, got, s.want)
		}
	}
	if c.Played() != 3 || len(rec.streams) != 3 {
		t.Errorf("played %d tones, recorded %d", c.Played(), len(rec.streams))
	}
}

func TestToneLength(t *testing.T) {
	rec := &recorder{}
	c := newChime(rec.play, time.Now)
	c.Ring()

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := rec.streams[0].Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(toneLen); total != want {
		t.Errorf("tone has %d samples, want %d", total, want)
	}
}

func TestPluginRingsOnReset(t *testing.T) {
	rec := &recorder{}
	c := newChime(rec.play, time.Now)
	app := ecs.NewApp(ecs.NewWorld(1))
	app.AddPlugins(c.Plugin())
	app.AddSystemTo(ecs.Last, ecs.NewSystem("test.reset", func(w *ecs.World) {
		ecs.Publish(w.Events(), sim.ResetEvent{Instance: 3})
	}))
	if err := app.Update(context.Background()); err != nil {
		t.Fatal(err)
	}
	if c.Played() != 1 {
		t.Errorf("expected one chime, got %d", c.Played())
	}
}

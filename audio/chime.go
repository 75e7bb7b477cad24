// Package audio plays a short tone whenever a simulation resets.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/edwinsyarief/tiltboard/sim"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	// MinGap is the shortest time between two chimes.
	MinGap   = 200 * time.Millisecond
	toneFreq = 880
	toneLen  = 80 * time.Millisecond
)

// Chime plays a rate-limited tone.
type Chime struct {
	mu     sync.Mutex
	last   time.Time
	played int
	now    func() time.Time
	play   func(beep.Streamer)
}

// New initializes the speaker. Callers usually log the error and run without
// sound.
func New() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return newChime(func(s beep.Streamer) { speaker.Play(s) }, time.Now), nil
}

func newChime(play func(beep.Streamer), now func() time.Time) *Chime {
	return &Chime{play: play, now: now}
}

// Ring plays the tone unless one played less than MinGap ago. It reports
// whether the tone played.
func (c *Chime) Ring() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now()
	if !c.last.IsZero() && t.Sub(c.last) < MinGap {
		return false
	}
	tone, err := generators.SineTone(sampleRate, toneFreq)
	if err != nil {
		return false
	}
	c.last = t
	c.played++
	c.play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(toneLen), tone),
		Base:     2,
		Volume:   -2,
	})
	return true
}

// Played returns the number of tones played so far.
func (c *Chime) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// Close stops everything still playing.
func (c *Chime) Close() {
	speaker.Clear()
}

// Plugin rings c on every sim.ResetEvent.
func (c *Chime) Plugin() ecs.Plugin {
	return ecs.PluginFunc(func(app *ecs.App) {
		app.AddStartupSystem(ecs.NewSystem("audio.init", func(w *ecs.World) {
			ecs.Subscribe(w.Events(), func(sim.ResetEvent) { c.Ring() })
		}))
	})
}

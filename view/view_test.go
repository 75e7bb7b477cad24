package view

import (
	"context"
	"testing"
	"time"

	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/edwinsyarief/tiltboard/sim"
	"github.com/gdamore/tcell/v2"
)

func newTestViewer(t *testing.T, w, h int) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(w, h)
	v := NewWithScreen(screen)
	t.Cleanup(v.Close)
	return v, screen
}

func TestDrawGrid(t *testing.T) {
	v, screen := newTestViewer(t, 4, 4)
	statuses := []sim.Status{
		{Index: 0, BallHeight: 4.5},
		{Index: 1, BallHeight: 0.6, TiltX: 0.05},
		{Index: 2, BallHeight: -1, TiltX: 0.1},
		{Index: 3, BallHeight: -5},
		{Index: 4, BallHeight: 0.6},
		// rows 2 and 3 hold eight cells; the rest is dropped
		{}, {}, {}, {Index: 8, BallHeight: 4.5},
	}
	v.Draw(statuses, 12)

	wantRunes := []rune{'O', 'o', '.', ' ', 'o'}
	for i, want := range wantRunes {
		r, _, _, _ := screen.GetContent(i%4, gridTop+i/4)
		if r != want {
			t.Errorf("cell %d = %q, want %q", i, r, want)
		}
	}
	wantStyles := []tcell.Style{styleLevel, styleTilted, styleSteep}
	for i, want := range wantStyles {
		_, _, style, _ := screen.GetContent(i, gridTop)
		if style != want {
			t.Errorf("cell %d style = %v, want %v", i, style, want)
		}
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != 't' {
		t.Errorf("header starts with %q", r)
	}
}

func TestQuitKeys(t *testing.T) {
	keys := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}
	for _, k := range keys {
		t.Run(k.name, func(t *testing.T) {
			v, screen := newTestViewer(t, 10, 5)
			screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
			screen.InjectKey(k.key, k.r, tcell.ModNone)
			select {
			case <-v.Quit():
			case <-time.After(2 * time.Second):
				t.Fatal("viewer did not quit")
			}
		})
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		h    float64
		want rune
	}{
		{4.5, 'O'},
		{0.6, 'o'},
		{-0.5, '.'},
		{sim.ResetHeight - 0.1, ' '},
	}
	for _, tt := range tests {
		if got := Glyph(tt.h); got != tt.want {
			t.Errorf("Glyph(%v) = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestPluginDrawsEachFrame(t *testing.T) {
	v, screen := newTestViewer(t, 20, 4)
	app := ecs.NewApp(ecs.NewWorld(1))
	app.AddPlugins(v.Plugin())
	for range 3 {
		if err := app.Update(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	// "tiltboard  frame 2"
	if r, _, _, _ := screen.GetContent(17, 0); r != '2' {
		t.Errorf("expected frame 2 in the header, got %q", r)
	}
}

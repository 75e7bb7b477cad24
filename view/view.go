// Package view draws the simulations as a grid of cells in the terminal.
package view

import (
	"fmt"
	"math"
	"sync"

	"github.com/edwinsyarief/tiltboard/ecs"
	"github.com/edwinsyarief/tiltboard/sim"
	"github.com/gdamore/tcell/v2"
)

// gridTop is the first screen row of the grid.
const gridTop = 2

var (
	styleHeader = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleLevel  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleTilted = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleSteep  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Viewer owns a tcell screen. Draw is called from the frame loop; key events
// are read on a separate goroutine.
type Viewer struct {
	screen tcell.Screen
	quit   chan struct{}
	done   chan struct{}
	once   sync.Once
}

// New opens the terminal.
func New() (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen uses an already initialized screen.
func NewWithScreen(screen tcell.Screen) *Viewer {
	screen.HideCursor()
	v := &Viewer{
		screen: screen,
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go v.poll()
	return v
}

// Quit is closed when the user asks to leave.
func (v *Viewer) Quit() <-chan struct{} {
	return v.quit
}

func (v *Viewer) poll() {
	defer close(v.done)
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				v.once.Do(func() { close(v.quit) })
			}
		case *tcell.EventResize:
			v.screen.Sync()
		}
	}
}

// Glyph is the cell shown for a ball at height h.
func Glyph(h float64) rune {
	switch {
	case h > 2:
		return 'O'
	case h > 0:
		return 'o'
	case h > sim.ResetHeight:
		return '.'
	}
	return ' '
}

// tiltStyle colors a cell by how far its board leans.
func tiltStyle(st sim.Status) tcell.Style {
	switch lean := math.Hypot(st.TiltX, st.TiltZ) / sim.MaxTilt; {
	case lean < 0.33:
		return styleLevel
	case lean < 0.66:
		return styleTilted
	}
	return styleSteep
}

// Draw renders one frame. Instances that do not fit the screen are skipped.
func (v *Viewer) Draw(statuses []sim.Status, frame uint64) {
	v.screen.Clear()
	width, height := v.screen.Size()

	var resets uint64
	for _, st := range statuses {
		resets += st.Resets
	}
	header := fmt.Sprintf("tiltboard  frame %d  instances %d  resets %d  [q] quit", frame, len(statuses), resets)
	v.text(0, 0, header, styleHeader)

	if width > 0 {
		for i, st := range statuses {
			x, y := i%width, gridTop+i/width
			if y >= height {
				break
			}
			v.screen.SetContent(x, y, Glyph(st.BallHeight), nil, tiltStyle(st))
		}
	}
	v.screen.Show()
}

func (v *Viewer) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Close restores the terminal.
func (v *Viewer) Close() {
	v.screen.Fini()
	<-v.done
}

// Plugin draws every frame from the Last stage.
func (v *Viewer) Plugin() ecs.Plugin {
	return ecs.PluginFunc(func(app *ecs.App) {
		var (
			buf   []sim.Status
			frame uint64
		)
		app.AddSystemTo(ecs.Last, ecs.NewSystem("view.draw", func(w *ecs.World) {
			buf = sim.Snapshot(w, buf[:0])
			v.Draw(buf, frame)
			frame++
		}))
	})
}

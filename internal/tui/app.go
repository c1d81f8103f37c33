package tui

import (
	"time"

	"typer3d/internal/input"
	"typer3d/internal/profiling"
	"typer3d/internal/scene"

	"github.com/gdamore/tcell/v2"
)

// TickRate is the simulation rate of the terminal front end.
const TickRate = 60

// App runs a scene in the terminal.
type App struct {
	screen tcell.Screen
	scene  *scene.Scene
	view   *View
	feeder Feeder
}

// NewApp wraps an initialized screen and scene.
func NewApp(screen tcell.Screen, s *scene.Scene) *App {
	w, h := screen.Size()
	if h > 0 {
		s.SetAspect(float32(w) / float32(2*h))
	}
	return &App{screen: screen, scene: s, view: NewView(screen)}
}

// HandleEvent applies a terminal event. It returns false when the player quits.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if k, ok := KeyFromEvent(ev); ok {
			a.feeder.Push(k)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Step runs one simulation tick and redraws.
func (a *App) Step(dt float32) {
	profiling.ResetFrame()
	fr := a.feeder.Next()
	a.scene.Control(dt, &fr)
	a.view.Draw(a.scene)
}

// Run loops until the player quits.
func (a *App) Run() {
	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			a.Step(float32(now.Sub(last).Seconds()))
			last = now
		}
	}
}

// Feed queues a key directly, bypassing the terminal.
func (a *App) Feed(k input.Key) {
	a.feeder.Push(k)
}

// Package tui is a terminal front end for the scene: a top-down map of the hub
// drawn with tcell.
package tui

import (
	"typer3d/internal/input"

	"github.com/gdamore/tcell/v2"
)

// KeyFromEvent translates a terminal key press to a key code.
func KeyFromEvent(ev *tcell.EventKey) (input.Key, bool) {
	return translate(ev.Key(), ev.Rune())
}

func translate(k tcell.Key, r rune) (input.Key, bool) {
	switch k {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyF1:
		return input.KeyF1, true
	case tcell.KeyF2:
		return input.KeyF2, true
	case tcell.KeyEscape:
		return input.KeyEscape, true
	case tcell.KeyEnter:
		return input.KeyEnter, true
	case tcell.KeyRune:
		return input.KeyFromRune(r)
	}
	return 0, false
}

// Feeder turns terminal key presses into per-tick frames. Terminals report presses
// but not releases, so each press is held for exactly one tick and presses that
// arrive together are spread over consecutive ticks.
type Feeder struct {
	queue []input.Key
}

const maxQueued = 64

// Push queues a press. Presses beyond a short backlog are dropped.
func (f *Feeder) Push(k input.Key) {
	if len(f.queue) >= maxQueued {
		return
	}
	f.queue = append(f.queue, k)
}

// Pending returns the number of queued presses.
func (f *Feeder) Pending() int { return len(f.queue) }

// Next returns the frame for the coming tick.
func (f *Feeder) Next() input.Frame {
	var fr input.Frame
	if len(f.queue) == 0 {
		return fr
	}
	fr.Set(f.queue[0], true)
	f.queue = f.queue[1:]
	return fr
}

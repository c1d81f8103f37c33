// Package input defines the key codes and per-tick input snapshot the simulation
// reads. Front ends translate their native events into these.
package input

import (
	"strconv"
	"unicode"

	"github.com/go-gl/mathgl/mgl32"
)

// Key is a key code. Codes 0..255 are ASCII characters; printable letters are
// always lower case. Special keys follow.
type Key int

const (
	KeyEscape Key = 27
	KeyEnter  Key = '\r'
)

const (
	KeyUp Key = 256 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyCount // Sentinel value for array sizing
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyF1:
		return "F1"
	case KeyF2:
		return "F2"
	case KeyEscape:
		return "Esc"
	}
	if k > ' ' && k < 127 {
		return string(rune(k))
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// KeyFromRune maps a typed character to its key code. Letters fold to lower case.
func KeyFromRune(r rune) (Key, bool) {
	r = unicode.ToLower(r)
	if r < 0 || r > 255 {
		return 0, false
	}
	return Key(r), true
}

// Frame is the input state for one tick.
type Frame struct {
	Keys       [KeyCount]bool
	MouseDelta mgl32.Vec2
}

// Down reports whether k is held this tick.
func (f *Frame) Down(k Key) bool {
	if k < 0 || k >= KeyCount {
		return false
	}
	return f.Keys[k]
}

// Set marks k held or released.
func (f *Frame) Set(k Key, down bool) {
	if k < 0 || k >= KeyCount {
		return
	}
	f.Keys[k] = down
}

// Clear releases every key and drops the mouse delta.
func (f *Frame) Clear() {
	*f = Frame{}
}

// Latch turns a held key into a single press. Feed it the key state every tick.
type Latch struct {
	held bool
}

// Rising returns true on the tick down goes from released to held.
func (l *Latch) Rising(down bool) bool {
	fire := down && !l.held
	l.held = down
	return fire
}

// Held reports the last state seen.
func (l *Latch) Held() bool { return l.held }

// Reset forgets the held state.
func (l *Latch) Reset() { l.held = false }

package game

import (
	"sync"

	"typer3d/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// DragTarget receives pointer drags, normally the scene camera.
type DragTarget interface {
	StartDrag(x, y float32)
	Drag(x, y float32)
	EndDrag()
}

// InputManager turns glfw callbacks into the per-tick input.Frame the scene reads.
type InputManager struct {
	mu sync.RWMutex

	// Physical key to key code
	keyToCode map[glfw.Key]input.Key

	held     [input.KeyCount]bool
	dragging bool
}

// NewInputManager creates an InputManager with the default bindings: letters
// (lower case), digits, space, enter, escape, arrows, F1 and F2.
func NewInputManager() *InputManager {
	im := &InputManager{keyToCode: make(map[glfw.Key]input.Key)}

	for k := glfw.KeyA; k <= glfw.KeyZ; k++ {
		im.BindKey(k, input.Key('a'+int(k-glfw.KeyA)))
	}
	for k := glfw.Key0; k <= glfw.Key9; k++ {
		im.BindKey(k, input.Key('0'+int(k-glfw.Key0)))
	}
	im.BindKey(glfw.KeySpace, ' ')
	im.BindKey(glfw.KeyEnter, input.KeyEnter)
	im.BindKey(glfw.KeyEscape, input.KeyEscape)
	im.BindKey(glfw.KeyUp, input.KeyUp)
	im.BindKey(glfw.KeyDown, input.KeyDown)
	im.BindKey(glfw.KeyLeft, input.KeyLeft)
	im.BindKey(glfw.KeyRight, input.KeyRight)
	im.BindKey(glfw.KeyF1, input.KeyF1)
	im.BindKey(glfw.KeyF2, input.KeyF2)

	return im
}

// BindKey maps a physical key to a key code, replacing any earlier binding.
func (im *InputManager) BindKey(key glfw.Key, code input.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if code < 0 || code >= input.KeyCount {
		return
	}
	im.keyToCode[key] = code
}

// UnbindKey removes the binding for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToCode, key)
}

// HandleKeyEvent records a press or release. Repeats change nothing.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	code, ok := im.keyToCode[key]
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		im.held[code] = true
	case glfw.Release:
		im.held[code] = false
	}
}

// HandleMouseButtonEvent starts or ends a look drag with the left button.
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action, x, y float64, t DragTarget) {
	if button != glfw.MouseButtonLeft {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()

	switch action {
	case glfw.Press:
		im.dragging = true
		if t != nil {
			t.StartDrag(float32(x), float32(y))
		}
	case glfw.Release:
		im.dragging = false
		if t != nil {
			t.EndDrag()
		}
	}
}

// HandleCursorPos forwards pointer motion while dragging.
func (im *InputManager) HandleCursorPos(x, y float64, t DragTarget) {
	im.mu.RLock()
	dragging := im.dragging
	im.mu.RUnlock()

	if dragging && t != nil {
		t.Drag(float32(x), float32(y))
	}
}

// IsHeld reports whether a key code is currently down.
func (im *InputManager) IsHeld(code input.Key) bool {
	im.mu.RLock()
	defer im.mu.RUnlock()
	if code < 0 || code >= input.KeyCount {
		return false
	}
	return im.held[code]
}

// Dragging reports whether the look button is down.
func (im *InputManager) Dragging() bool {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.dragging
}

// Snapshot returns the keys held right now. Look drags reach the camera
// directly, so MouseDelta stays zero.
func (im *InputManager) Snapshot() input.Frame {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return input.Frame{Keys: im.held}
}

// ReleaseAll forgets every held key, e.g. when the window loses focus.
func (im *InputManager) ReleaseAll() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.held = [input.KeyCount]bool{}
	im.dragging = false
}

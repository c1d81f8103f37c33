// Package game runs a scene in a glfw window with the GL renderer.
package game

import (
	"log"
	"time"

	"typer3d/internal/config"
	"typer3d/internal/graphics/renderer"
	"typer3d/internal/input"
	"typer3d/internal/profiling"
	"typer3d/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	// TickRate is the fixed simulation rate.
	TickRate = 60
	// MaxTicksPerFrame bounds catch-up after a stall.
	MaxTicksPerFrame = 5

	tickDT    = 1.0 / TickRate
	slowFrame = 16 * time.Millisecond
)

type App struct {
	window       *glfw.Window
	inputManager *InputManager
	scene        *scene.Scene
	renderer     *renderer.Renderer

	fpsLimiter *FPSLimiter
	lastTime   time.Time
	pending    float64
}

// NewApp wires an initialized scene and renderer to a window. Call
// SetupInputHandlers before Run.
func NewApp(window *glfw.Window, s *scene.Scene, r *renderer.Renderer) *App {
	fbW, fbH := window.GetFramebufferSize()
	if fbH > 0 {
		s.SetAspect(float32(fbW) / float32(fbH))
	}
	return &App{
		window:       window,
		inputManager: NewInputManager(),
		scene:        s,
		renderer:     r,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	glfw.PollEvents()
	if a.inputManager.IsHeld(input.KeyEscape) {
		a.window.SetShouldClose(true)
		return
	}

	a.scene.Camera().Sensitivity = config.GetMouseSensitivity()
	for range TicksDue(&a.pending, dt) {
		fr := a.inputManager.Snapshot()
		a.scene.Control(tickDT, &fr)
	}

	a.render(dt)
	a.window.SwapBuffers()

	if d := time.Since(startTick); d > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	a.fpsLimiter.Wait(a.scene.Paused() || a.scene.GameOver())
}

func (a *App) render(dt float64) {
	fr := a.scene.Snapshot()
	a.renderer.Render(&fr, dt)
}

// RefreshRender repaints during window resizes.
func (a *App) RefreshRender() {
	a.render(0)
	a.window.SwapBuffers()
}

// TicksDue adds dt to the pending time and returns how many fixed ticks to run,
// leaving the remainder pending. At most MaxTicksPerFrame are returned; time
// beyond that is dropped.
func TicksDue(pending *float64, dt float64) int {
	*pending += dt
	n := int(*pending / tickDT)
	if n > MaxTicksPerFrame {
		*pending = 0
		return MaxTicksPerFrame
	}
	*pending -= float64(n) * tickDT
	return n
}

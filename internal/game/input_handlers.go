package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	// Left drag steers the no-clip camera
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := w.GetCursorPos()
		im.HandleMouseButtonEvent(button, action, x, y, app.scene.Camera())
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorPos(xpos, ypos, app.scene.Camera())
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		app.renderer.UpdateViewport(fbWidth, fbHeight)
		if fbHeight > 0 {
			app.scene.SetAspect(float32(fbWidth) / float32(fbHeight))
		}
	})

	// Keys released while unfocused never report, so forget them all
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			im.ReleaseAll()
			app.scene.Camera().EndDrag()
		}
	})

	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}

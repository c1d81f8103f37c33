package main

import (
	"fmt"

	"typer3d/internal/audio"
	"typer3d/internal/config"
	"typer3d/internal/game"
	"typer3d/internal/graphics/renderables/hud"
	"typer3d/internal/graphics/renderables/objects"
	"typer3d/internal/graphics/renderables/shadows"
	"typer3d/internal/graphics/renderables/spheres"
	renderer "typer3d/internal/graphics/renderer"
	"typer3d/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func run(st config.Settings, player *audio.Player) error {
	s, err := scene.Load(st, scene.WithListener(player.OnEvent))
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(st.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	r, err := setupRenderer(window)
	if err != nil {
		return err
	}
	defer r.Dispose()

	app := game.NewApp(window, s, r)
	game.SetupInputHandlers(app)
	app.Run()
	return nil
}

// setupRenderer draws objects first, then shadows over the ground, then the
// debug spheres and finally the HUD.
func setupRenderer(window *glfw.Window) (*renderer.Renderer, error) {
	fbW, fbH := window.GetFramebufferSize()
	return renderer.NewRenderer(fbW, fbH,
		objects.NewObjects(*shaderDir),
		shadows.NewShadows(*shaderDir),
		spheres.NewSpheres(*shaderDir),
		hud.NewHUD(*shaderDir),
	)
}

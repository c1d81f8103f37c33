package renderer

import (
	"typer3d/internal/graphics"
	"typer3d/internal/scene"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Frame    *scene.Frame
	Meshes   *graphics.MeshCache
	Textures *graphics.TextureCache
	Width    int
	Height   int
	DT       float64
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

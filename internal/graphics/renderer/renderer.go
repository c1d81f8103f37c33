package renderer

import (
	"fmt"

	"typer3d/internal/graphics"
	"typer3d/internal/profiling"
	"typer3d/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ClearColor is the sky-less background.
var ClearColor = [4]float32{0.05, 0.05, 0.1, 1.0}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	meshes      *graphics.MeshCache
	textures    *graphics.TextureCache

	width, height int
}

// NewRenderer creates a new renderer with the given renderables. The GL context
// must be current and gl.Init already called.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{
		renderables: rs,
		meshes:      graphics.NewMeshCache(),
		textures:    graphics.NewTextureCache(),
	}

	// Initialize all renderables
	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}
	r.UpdateViewport(width, height)
	return r, nil
}

// Render draws one scene frame.
func (r *Renderer) Render(fr *scene.Frame, dt float64) {
	defer profiling.Track("render.total")()

	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Frame:    fr,
		Meshes:   r.meshes,
		Textures: r.textures,
		Width:    r.width,
		Height:   r.height,
		DT:       dt,
	}

	// Render all features
	for _, rb := range r.renderables {
		rb.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.meshes.Dispose()
	r.textures.Dispose()
}

// UpdateViewport resizes the GL viewport and tells every feature.
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
}

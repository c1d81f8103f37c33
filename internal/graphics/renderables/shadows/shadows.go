package shadows

import (
	"typer3d/internal/graphics"
	renderer "typer3d/internal/graphics/renderer"
	"typer3d/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Color is the blended shadow tint.
var Color = mgl32.Vec4{0, 0, 0, 0.8}

// Shadows draws each caster flattened onto the ground with its shadow matrix.
type Shadows struct {
	shaderDir string
	shader    *graphics.Shader
}

func NewShadows(shaderDir string) *Shadows {
	return &Shadows{shaderDir: shaderDir}
}

func (s *Shadows) Init() error {
	var err error
	s.shader, err = graphics.LoadProgram(s.shaderDir, "flat")
	return err
}

func (s *Shadows) Render(ctx renderer.RenderContext) {
	defer profiling.Track("render.shadows")()
	fr := ctx.Frame

	s.shader.Use()
	s.shader.SetMat4("proj", fr.Projection)
	s.shader.SetMat4("view", fr.View)
	s.shader.SetVec4("color", Color)

	gl.DepthMask(false)
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(-1, -1)
	for _, d := range fr.Objects {
		if !d.CastsShadow || d.Mesh == nil {
			continue
		}
		s.shader.SetMat4("model", d.Shadow)
		ctx.Meshes.Get(d.Mesh).Draw()
	}
	gl.Disable(gl.POLYGON_OFFSET_FILL)
	gl.DepthMask(true)
}

func (s *Shadows) Dispose() {
	if s.shader != nil {
		s.shader.Delete()
	}
}

func (s *Shadows) SetViewport(width, height int) {}

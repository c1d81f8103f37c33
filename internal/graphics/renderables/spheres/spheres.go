package spheres

import (
	"typer3d/internal/graphics"
	renderer "typer3d/internal/graphics/renderer"
	"typer3d/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const segments = 24

var (
	Color          = mgl32.Vec4{0.2, 0.9, 0.3, 1}
	CollidingColor = mgl32.Vec4{1, 0.2, 0.2, 1}
)

// Spheres outlines every bounding sphere when the frame asks for it.
type Spheres struct {
	shaderDir string
	shader    *graphics.Shader
	vao       uint32
	vbo       uint32
	count     int32
}

func NewSpheres(shaderDir string) *Spheres {
	return &Spheres{shaderDir: shaderDir}
}

func (s *Spheres) Init() error {
	var err error
	s.shader, err = graphics.LoadProgram(s.shaderDir, "flat")
	if err != nil {
		return err
	}

	vertices := graphics.SphereLines(segments)
	s.count = int32(len(vertices) / 3)

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
	return nil
}

func (s *Spheres) Render(ctx renderer.RenderContext) {
	fr := ctx.Frame
	if !fr.ShowSpheres {
		return
	}
	defer profiling.Track("render.spheres")()

	s.shader.Use()
	s.shader.SetMat4("proj", fr.Projection)
	s.shader.SetMat4("view", fr.View)

	gl.BindVertexArray(s.vao)
	gl.LineWidth(1.0)
	for _, d := range fr.Objects {
		if d.Radius <= 0 {
			continue
		}
		model := mgl32.Translate3D(d.Center[0], d.Center[1], d.Center[2]).
			Mul4(mgl32.Scale3D(d.Radius, d.Radius, d.Radius))
		s.shader.SetMat4("model", model)
		if d.Colliding {
			s.shader.SetVec4("color", CollidingColor)
		} else {
			s.shader.SetVec4("color", Color)
		}
		gl.DrawArrays(gl.LINES, 0, s.count)
	}
}

func (s *Spheres) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}

func (s *Spheres) SetViewport(width, height int) {}

package objects

import (
	"fmt"

	"typer3d/internal/graphics"
	renderer "typer3d/internal/graphics/renderer"
	"typer3d/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Ambient is added to every lit fragment.
var Ambient = mgl32.Vec3{0.15, 0.15, 0.15}

// Objects draws every mesh with per-fragment diffuse and specular lighting.
type Objects struct {
	shaderDir string
	shader    *graphics.Shader
}

func NewObjects(shaderDir string) *Objects {
	return &Objects{shaderDir: shaderDir}
}

func (o *Objects) Init() error {
	var err error
	o.shader, err = graphics.LoadProgram(o.shaderDir, "object")
	return err
}

func (o *Objects) Render(ctx renderer.RenderContext) {
	defer profiling.Track("render.objects")()
	fr := ctx.Frame

	o.shader.Use()
	o.shader.SetMat4("proj", fr.Projection)
	o.shader.SetMat4("view", fr.View)
	o.shader.SetVec3("eye", fr.Eye)
	o.shader.SetVec3("ambient", Ambient)
	o.shader.SetInt("tex", 0)

	lights := graphics.PackLights(fr.Lights)
	o.shader.SetInt("numLights", int32(len(lights)))
	for i, l := range lights {
		o.shader.SetVec4(fmt.Sprintf("lights[%d].pos", i), l.Pos)
		o.shader.SetVec3(fmt.Sprintf("lights[%d].color", i), l.Color)
	}

	gl.ActiveTexture(gl.TEXTURE0)
	for _, d := range fr.Objects {
		if d.Mesh == nil || d.Material == nil {
			continue
		}
		m := d.Material
		o.shader.SetMat4("model", d.Model)
		o.shader.SetVec3("kd", m.Kd)
		o.shader.SetVec3("ks", m.Ks)
		o.shader.SetFloat("shininess", m.SpecularExponent())

		tex := ctx.Textures.Get(m)
		o.shader.SetBool("hasTexture", tex != 0)
		gl.BindTexture(gl.TEXTURE_2D, tex)

		ctx.Meshes.Get(d.Mesh).Draw()
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (o *Objects) Dispose() {
	if o.shader != nil {
		o.shader.Delete()
	}
}

func (o *Objects) SetViewport(width, height int) {}

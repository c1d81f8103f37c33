package graphics

import (
	"typer3d/internal/light"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the size of the light arrays in the object shader.
const MaxLights = 4

// LightUniform is one shader light. W of Pos is 0 for a direction toward the
// light and 1 for a point position.
type LightUniform struct {
	Pos   mgl32.Vec4
	Color mgl32.Vec3
}

// PackLights converts scene lights for upload, dropping any past MaxLights.
func PackLights(lights []light.Source) []LightUniform {
	out := make([]LightUniform, 0, min(len(lights), MaxLights))
	for _, l := range lights {
		if len(out) == MaxLights {
			break
		}
		switch l := l.(type) {
		case *light.Directional:
			out = append(out, LightUniform{Pos: l.Dir.Vec4(0), Color: l.Radiance})
		case *light.Point:
			out = append(out, LightUniform{Pos: l.Pos.Vec4(1), Color: l.Power})
		}
	}
	return out
}

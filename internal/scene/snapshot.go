package scene

import (
	"strings"

	"typer3d/internal/asset"
	"typer3d/internal/entity"
	"typer3d/internal/invariant"
	"typer3d/internal/light"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	TextGameOver = "YOU DIED"
	TextPaused   = "PAUSED (PRESS 2 TO UNPAUSE)"
)

// Drawable is what the renderer needs for one object.
type Drawable struct {
	ID       entity.ID
	Kind     entity.Kind
	Mesh     *asset.Mesh
	Material *asset.Material
	Model    mgl32.Mat4

	// Shadow projects the object onto the ground plane along the first light.
	Shadow      mgl32.Mat4
	CastsShadow bool

	Center    mgl32.Vec3
	Radius    float32
	Colliding bool
}

// HUD is the on-screen text. Typed is how many leading characters of Text are done.
type HUD struct {
	Text     string
	Typed    int
	GameOver bool
	Paused   bool
}

// Frame is a read-only view of the scene for one render pass.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
	Lights     []light.Source
	Objects    []Drawable
	HUD        HUD

	ShowSpheres bool
	Lane        int
	Level       int
}

// Snapshot captures the scene for rendering.
func (s *Scene) Snapshot() Frame {
	fr := Frame{
		View:        s.camera.View(),
		Projection:  s.camera.Projection(),
		Eye:         s.camera.Eye,
		Lights:      s.lights,
		HUD:         s.hud(),
		ShowSpheres: s.showSpheres,
		Lane:        s.lane,
		Level:       s.level,
		Objects:     make([]Drawable, 0, s.store.Len()),
	}

	var lightDir mgl32.Vec3
	canShadow := len(s.lights) > 0
	if canShadow {
		lightDir = s.lights[0].DirAt(mgl32.Vec3{})
		if math32.Abs(lightDir.Y()) < 1e-6 {
			invariant.Once("scene: first light is parallel to the ground, shadows off")
			canShadow = false
		}
	}

	for _, o := range s.store.Objects() {
		d := Drawable{
			ID:        o.ID(),
			Kind:      o.Kind,
			Mesh:      o.Mesh,
			Material:  o.Material,
			Model:     o.Model(),
			Center:    o.Center(),
			Radius:    o.Radius(),
			Colliding: o.IsColliding(),
		}
		if o.Shadow && canShadow {
			d.Shadow = ShadowMatrix(d.Model, lightDir)
			d.CastsShadow = true
		}
		fr.Objects = append(fr.Objects, d)
	}
	return fr
}

func (s *Scene) hud() HUD {
	switch {
	case s.gameOver:
		return HUD{Text: TextGameOver, GameOver: true}
	case s.paused:
		return HUD{Text: TextPaused, Paused: true}
	}
	return HUD{Text: strings.ToUpper(s.laneWords[s.lane]), Typed: s.typed[s.lane]}
}

// ShadowMatrix shears a model along lightDir by height and squashes it onto y=0,
// just above the ground tile. lightDir must not be horizontal.
func ShadowMatrix(model mgl32.Mat4, lightDir mgl32.Vec3) mgl32.Mat4 {
	shear := mgl32.Mat4{
		1, 0, 0, 0,
		-lightDir.X() / lightDir.Y(), 1, -lightDir.Z() / lightDir.Y(), 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return mgl32.Scale3D(1, 0, 1).Mul4(shear).Mul4(model)
}

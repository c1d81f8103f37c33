// Package light models the scene's light sources.
package light

import (
	"typer3d/internal/vmath"

	"github.com/go-gl/mathgl/mgl32"
)

// Source is a light the renderer can evaluate at a world position.
type Source interface {
	RadianceAt(x mgl32.Vec3) mgl32.Vec3
	// DirAt returns the unit direction from x toward the light.
	DirAt(x mgl32.Vec3) mgl32.Vec3
	DistanceFrom(x mgl32.Vec3) float32
}

// Directional is a light infinitely far away.
type Directional struct {
	Dir      mgl32.Vec3
	Radiance mgl32.Vec3
}

// NewDirectional normalizes dir.
func NewDirectional(dir, radiance mgl32.Vec3) *Directional {
	return &Directional{Dir: vmath.MustNormalize(dir), Radiance: radiance}
}

func (d *Directional) RadianceAt(mgl32.Vec3) mgl32.Vec3 { return d.Radiance }
func (d *Directional) DirAt(mgl32.Vec3) mgl32.Vec3      { return d.Dir }
func (d *Directional) DistanceFrom(mgl32.Vec3) float32  { return 900000000 }

// Point radiates from a position with inverse-square falloff.
type Point struct {
	Pos   mgl32.Vec3
	Power mgl32.Vec3
}

func (p *Point) RadianceAt(x mgl32.Vec3) mgl32.Vec3 {
	d2 := x.Sub(p.Pos).LenSqr()
	if d2 == 0 {
		return p.Power
	}
	return p.Power.Mul(1 / d2 * 4 * 3.14)
}

func (p *Point) DirAt(x mgl32.Vec3) mgl32.Vec3 {
	d, _ := vmath.Normalize(p.Pos.Sub(x))
	return d
}

func (p *Point) DistanceFrom(x mgl32.Vec3) float32 {
	return p.Pos.Sub(x).Len()
}

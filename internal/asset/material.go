package asset

import "github.com/go-gl/mathgl/mgl32"

// Filter selects texture sampling.
type Filter int

const (
	FilterLinear Filter = iota
	FilterNearest
	FilterMipmap
)

// MaxShininess is the largest specular exponent fixed-function GL accepts.
const MaxShininess = 128

// Material describes surface shading. A nil Texture means untextured.
type Material struct {
	Name      string
	Kd        mgl32.Vec3 // diffuse reflection coefficient
	Ks        mgl32.Vec3 // specular reflection coefficient
	Shininess float32
	Texture   *Texture
	Filter    Filter
}

// NewMaterial returns an untextured material with the default coefficients.
func NewMaterial(name string) *Material {
	return &Material{
		Name:      name,
		Kd:        mgl32.Vec3{0.75, 0.75, 0.75},
		Ks:        mgl32.Vec3{1, 1, 1},
		Shininess: 15,
	}
}

// NewTexturedMaterial wraps a texture with the default coefficients.
func NewTexturedMaterial(name string, tex *Texture, filter Filter) *Material {
	m := NewMaterial(name)
	m.Texture = tex
	m.Filter = filter
	return m
}

// SpecularExponent returns Shininess clamped to MaxShininess.
func (m *Material) SpecularExponent() float32 {
	if m.Shininess > MaxShininess {
		return MaxShininess
	}
	return m.Shininess
}

// Package vmath collects the vector helpers the simulation needs on top of mathgl:
// guarded normalization, rotation about an arbitrary axis through a pivot, and
// degree wrapping.
package vmath

import (
	"typer3d/internal/invariant"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the length below which a vector counts as zero.
const Epsilon = 1e-6

// Normalize returns v scaled to unit length. ok is false for a zero-length vector,
// in which case the zero vector is returned instead of NaNs.
func Normalize(v mgl32.Vec3) (n mgl32.Vec3, ok bool) {
	l := v.Len()
	if l < Epsilon {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// MustNormalize normalizes v and treats a zero-length input as a programming error.
func MustNormalize(v mgl32.Vec3) mgl32.Vec3 {
	n, ok := Normalize(v)
	invariant.Check(ok, "vmath: normalize of zero-length vector %v", v)
	return n
}

// MulElem multiplies a and b component-wise.
func MulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Splat returns a vector with every component set to f.
func Splat(f float32) mgl32.Vec3 {
	return mgl32.Vec3{f, f, f}
}

// MaxComponent returns the largest of v's components.
func MaxComponent(v mgl32.Vec3) float32 {
	return math32.Max(v[0], math32.Max(v[1], v[2]))
}

// WrapDegrees maps a into [0, 360).
func WrapDegrees(a float32) float32 {
	r := math32.Mod(a, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r = 0
	}
	return r
}

// RotateAbout rotates point p by degrees around the line through pivot along axis.
// axis must be unit length.
//
// For pivot (a,b,c), axis (u,v,w) and point (x,y,z):
//
//	x' = (a(v²+w²) − u(bv+cw−ux−vy−wz))(1−cosθ) + x·cosθ + (−cv+bw−wy+vz)·sinθ
//
// with y' and z' following by cyclic permutation.
func RotateAbout(p, pivot, axis mgl32.Vec3, degrees float32) mgl32.Vec3 {
	theta := mgl32.DegToRad(degrees)
	cos, sin := math32.Cos(theta), math32.Sin(theta)

	a, b, c := pivot[0], pivot[1], pivot[2]
	x, y, z := p[0], p[1], p[2]
	u, v, w := axis[0], axis[1], axis[2]
	dot := u*x + v*y + w*z

	return mgl32.Vec3{
		(a*(v*v+w*w)-u*(b*v+c*w-dot))*(1-cos) + x*cos + (-c*v+b*w-w*y+v*z)*sin,
		(b*(u*u+w*w)-v*(a*u+c*w-dot))*(1-cos) + y*cos + (c*u-a*w+w*x-u*z)*sin,
		(c*(u*u+v*v)-w*(a*u+b*v-dot))*(1-cos) + z*cos + (-b*u+a*v-v*x+u*y)*sin,
	}
}

// ApproxEqual reports whether a and b are within eps on every component.
func ApproxEqual(a, b mgl32.Vec3, eps float32) bool {
	return math32.Abs(a[0]-b[0]) <= eps &&
		math32.Abs(a[1]-b[1]) <= eps &&
		math32.Abs(a[2]-b[2]) <= eps
}

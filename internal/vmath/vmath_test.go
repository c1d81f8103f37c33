package vmath

import (
	"testing"

	"typer3d/internal/invariant"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNormalizeZeroVector(t *testing.T) {
	n, ok := Normalize(mgl32.Vec3{})
	if ok {
		t.Fatalf("expected zero vector to be rejected")
	}
	if n != (mgl32.Vec3{}) {
		t.Errorf("expected zero result, got %v", n)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	n, ok := Normalize(mgl32.Vec3{3, 0, 4})
	if !ok {
		t.Fatalf("expected success")
	}
	if math32.Abs(n.Len()-1) > 1e-6 {
		t.Errorf("expected unit length, got %f", n.Len())
	}
}

func TestMustNormalizePanicsOnZero(t *testing.T) {
	if !invariant.Strict() {
		t.Skip("release build logs instead of panicking")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for zero-length vector")
		}
	}()
	MustNormalize(mgl32.Vec3{})
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{name: "zero", in: 0, want: 0},
		{name: "inside", in: 45, want: 45},
		{name: "full turn", in: 360, want: 0},
		{name: "over", in: 370, want: 10},
		{name: "negative", in: -90, want: 270},
		{name: "far negative", in: -725, want: 355},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapDegrees(tt.in); math32.Abs(got-tt.want) > 1e-4 {
				t.Errorf("WrapDegrees(%f) = %f, want %f", tt.in, got, tt.want)
			}
		})
	}
}

func TestRotateAboutQuarterTurn(t *testing.T) {
	// (1,0,0) around the y axis through the origin by 90 degrees lands on (0,0,-1).
	got := RotateAbout(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, 90)
	if !ApproxEqual(got, mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("got %v", got)
	}
}

func TestRotateAboutOffsetPivot(t *testing.T) {
	pivot := mgl32.Vec3{2, 0, 0}
	got := RotateAbout(mgl32.Vec3{3, 0, 0}, pivot, mgl32.Vec3{0, 1, 0}, 180)
	if !ApproxEqual(got, mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("got %v", got)
	}
}

func TestRotateAboutFullTurnIsIdentity(t *testing.T) {
	axis := MustNormalize(mgl32.Vec3{1, 2, 3})
	pivot := mgl32.Vec3{-4, 1.5, 7}
	for _, p := range []mgl32.Vec3{{0, 0, 0}, {1, -2, 3}, {10, 10, -10}} {
		got := RotateAbout(p, pivot, axis, 360)
		if !ApproxEqual(got, p, 1e-3) {
			t.Errorf("full turn moved %v to %v", p, got)
		}
	}
}

func TestRotateAboutKeepsDistanceToAxis(t *testing.T) {
	axis := MustNormalize(mgl32.Vec3{0, 1, 1})
	pivot := mgl32.Vec3{1, 1, 1}
	p := mgl32.Vec3{3, -1, 2}
	before := p.Sub(pivot).Len()
	got := RotateAbout(p, pivot, axis, 37)
	if after := got.Sub(pivot).Len(); math32.Abs(after-before) > 1e-4 {
		t.Errorf("distance to pivot changed from %f to %f", before, after)
	}
}

func BenchmarkRotateAbout(b *testing.B) {
	axis := MustNormalize(mgl32.Vec3{1, 1, 0})
	p := mgl32.Vec3{1, 2, 3}
	for i := 0; i < b.N; i++ {
		p = RotateAbout(p, mgl32.Vec3{}, axis, 5)
	}
}

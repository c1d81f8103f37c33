package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDirectionalIsNormalized(t *testing.T) {
	d := NewDirectional(mgl32.Vec3{1, 1, -1}, mgl32.Vec3{1, 0.5, 1})
	if l := d.DirAt(mgl32.Vec3{5, 5, 5}).Len(); l < 0.9999 || l > 1.0001 {
		t.Errorf("expected unit direction, got length %f", l)
	}
}

func TestPointFalloff(t *testing.T) {
	p := &Point{Pos: mgl32.Vec3{0, 0, 0}, Power: mgl32.Vec3{1, 1, 1}}
	near := p.RadianceAt(mgl32.Vec3{1, 0, 0})
	far := p.RadianceAt(mgl32.Vec3{2, 0, 0})
	if far[0] >= near[0] {
		t.Errorf("expected falloff, near=%f far=%f", near[0], far[0])
	}
	if dir := p.DirAt(mgl32.Vec3{0, 0, 3}); dir != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("unexpected direction %v", dir)
	}
	if d := p.DistanceFrom(mgl32.Vec3{0, 3, 4}); d != 5 {
		t.Errorf("expected distance 5, got %f", d)
	}
}

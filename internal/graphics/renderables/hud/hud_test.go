package hud

import (
	"strings"
	"testing"

	"typer3d/internal/scene"
)

func TestQuadCorners(t *testing.T) {
	tests := []struct {
		name           string
		x, y, w, h     int
		wantX0, wantY0 float32
		wantX1, wantY1 float32
	}{
		{"full screen", 0, 0, 100, 50, -1, 1, 1, -1},
		{"top left quarter", 0, 0, 50, 25, -1, 1, 0, 0},
		{"bottom right quarter", 50, 25, 50, 25, 0, 0, 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Quad(tt.x, tt.y, tt.w, tt.h, 100, 50)
			if len(v) != 24 {
				t.Fatalf("len = %d, want 24", len(v))
			}
			if v[0] != tt.wantX0 || v[1] != tt.wantY0 {
				t.Errorf("top-left = (%v,%v), want (%v,%v)", v[0], v[1], tt.wantX0, tt.wantY0)
			}
			if v[8] != tt.wantX1 || v[9] != tt.wantY1 {
				t.Errorf("bottom-right = (%v,%v), want (%v,%v)", v[8], v[9], tt.wantX1, tt.wantY1)
			}
		})
	}
}

func TestQuadUVsPutImageTopAtScreenTop(t *testing.T) {
	v := Quad(0, 0, 10, 10, 10, 10)
	// first vertex is the top-left corner
	if v[2] != 0 || v[3] != 1 {
		t.Fatalf("top-left uv = (%v,%v), want (0,1)", v[2], v[3])
	}
}

func TestStatusLine(t *testing.T) {
	fr := &scene.Frame{Level: 2, Lane: 3}
	got := StatusLine(fr, 59, false)
	if got != "LV 2  LANE 3  FPS 59" {
		t.Errorf("status = %q", got)
	}
	if p := StatusLine(fr, 59, true); !strings.Contains(p, "CTL") || !strings.Contains(p, "GFX") {
		t.Errorf("profiling status = %q", p)
	}
}

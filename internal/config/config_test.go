package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "typer.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.FPSLimit != Default().FPSLimit || s.Dictionary != "ospd.txt" {
		t.Errorf("unexpected settings: %+v", s)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
window:
  width: 1280
  height: 720
fps_limit: 120
dictionary: words.txt
levels:
  level2_after: 10
  level3_after: 20
spawn:
  threshold: 9000
assets:
  meshes:
    plane: floor.obj
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Window.Width != 1280 || s.Window.Title != "typer3d" {
		t.Errorf("window = %+v", s.Window)
	}
	if s.FPSLimit != 120 || s.Dictionary != "words.txt" || s.Levels.Level3After != 20 {
		t.Errorf("settings = %+v", s)
	}
	if s.Spawn.Threshold != 9000 || s.Spawn.RollMax != 10000 {
		t.Errorf("spawn = %+v", s.Spawn)
	}
	if s.Assets.Meshes["plane"] != "floor.obj" {
		t.Errorf("plane mesh = %q", s.Assets.Meshes["plane"])
	}
	if s.Aspect() != 1280.0/720.0 {
		t.Errorf("aspect = %v", s.Aspect())
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed yaml", "window: [1, 2", "parse settings"},
		{"zero width", "window:\n  width: 0\n", "window size"},
		{"levels out of order", "levels:\n  level2_after: 50\n  level3_after: 10\n", "out of order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestRuntimeSettingsClamp(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())
	tests := []struct{ in, want int }{{-5, 0}, {0, 0}, {10, 30}, {144, 144}, {1000, 240}}
	for _, tt := range tests {
		SetFPSLimit(tt.in)
		if got := GetFPSLimit(); got != tt.want {
			t.Errorf("SetFPSLimit(%d) -> %d, want %d", tt.in, got, tt.want)
		}
	}

	old := GetMouseSensitivity()
	SetMouseSensitivity(-1)
	if GetMouseSensitivity() != old {
		t.Error("non-positive sensitivity accepted")
	}
}

func TestShippedSettingsMatchDefaults(t *testing.T) {
	s, err := Load(filepath.Join("..", "..", "typer.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d := Default()
	if s.Window != d.Window || s.FPSLimit != d.FPSLimit || s.Levels != d.Levels || s.Spawn != d.Spawn {
		t.Errorf("typer.yaml drifted from defaults:\n got %+v\nwant %+v", s, d)
	}
	if s.Mouse != d.Mouse || s.Audio != d.Audio || s.AssetDir != d.AssetDir {
		t.Errorf("typer.yaml drifted from defaults:\n got %+v\nwant %+v", s, d)
	}
}

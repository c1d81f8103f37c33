package scene

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"typer3d/internal/asset"
	"typer3d/internal/config"
)

const triangleOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

// writeAssetDir fills a temp dir with a one-triangle mesh and a 1x1 png for every
// manifest entry, plus a three-tier dictionary.
func writeAssetDir(t *testing.T) config.Settings {
	t.Helper()
	dir := t.TempDir()
	st := config.Default()
	st.AssetDir = dir
	st.Dictionary = filepath.Join(dir, "words.txt")

	for _, file := range st.Assets.Meshes {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(triangleOBJ), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	for name := range st.Assets.Materials {
		file := name + ".png"
		st.Assets.Materials[name] = file
		f, err := os.Create(filepath.Join(dir, file))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
	words := "ace\nacorns\nabsolute\n"
	if err := os.WriteFile(st.Dictionary, []byte(words), 0o644); err != nil {
		t.Fatal(err)
	}
	return st
}

func TestLoad(t *testing.T) {
	st := writeAssetDir(t)
	st.Seed = 42
	st.Levels = config.LevelSettings{Level2After: 5, Level3After: 10}

	var got []Event
	s, err := Load(st, WithListener(func(ev Event) { got = append(got, ev) }))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Avatar() == nil || s.Ground() == nil {
		t.Fatal("scene not initialized")
	}
	if s.thresholds != [2]float32{5, 10} {
		t.Errorf("thresholds = %v", s.thresholds)
	}
	if len(s.listeners) != 1 {
		t.Errorf("listeners = %d, want 1", len(s.listeners))
	}
	if want := st.Aspect(); s.aspect != want {
		t.Errorf("aspect = %v, want %v", s.aspect, want)
	}
}

func TestLoadSeedIsReproducible(t *testing.T) {
	st := writeAssetDir(t)
	st.Seed = 7
	a, err := Load(st)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Load(st)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		if x, y := a.Rand().IntN(1000), b.Rand().IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestLoadMissingAsset(t *testing.T) {
	st := writeAssetDir(t)
	if err := os.Remove(filepath.Join(st.AssetDir, st.Assets.Meshes[asset.MeshEnemy])); err != nil {
		t.Fatal(err)
	}
	_, err := Load(st)
	var le *asset.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("want *asset.LoadError, got %v", err)
	}
}

func TestLoadMissingDictionary(t *testing.T) {
	st := writeAssetDir(t)
	st.Dictionary = filepath.Join(st.AssetDir, "nope.txt")
	if _, err := Load(st); err == nil {
		t.Fatal("expected an error for a missing dictionary")
	}
}

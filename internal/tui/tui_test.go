package tui

import (
	"strings"
	"testing"

	"typer3d/internal/asset"
	"typer3d/internal/dictionary"
	"typer3d/internal/input"
	"typer3d/internal/scene"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

type lowRand struct{}

func (lowRand) IntN(int) int { return 0 }

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	lib := asset.NewLibrary()
	for _, name := range []string{
		asset.MeshPlane, asset.MeshAvatar, asset.MeshEnemy, asset.MeshPedestal,
		asset.MeshGate, asset.MeshMountain, asset.MeshFireball,
	} {
		lib.AddMesh(name, asset.NewMesh(name, []mgl32.Vec3{{-1, 0, 0}, {1, 0, 0}}))
	}
	for _, name := range []string{
		asset.MaterialLava, asset.MaterialAvatar, asset.MaterialEnemy, asset.MaterialStone,
		asset.MaterialGate, asset.MaterialFire, asset.MaterialSky,
	} {
		lib.AddMaterial(name, asset.NewMaterial(name))
	}
	words, err := dictionary.FromWords("abandon", "absolute", "cat")
	if err != nil {
		t.Fatal(err)
	}
	s := scene.New(lib, words, scene.WithRand(lowRand{}))
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return s
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want input.Key
		ok   bool
	}{
		{"letter folds", tcell.KeyRune, 'Q', 'q', true},
		{"digit", tcell.KeyRune, '2', '2', true},
		{"left", tcell.KeyLeft, 0, input.KeyLeft, true},
		{"f2", tcell.KeyF2, 0, input.KeyF2, true},
		{"unmapped", tcell.KeyF9, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.key, tt.r)
			if got != tt.want || ok != tt.ok {
				t.Errorf("translate = %v,%v want %v,%v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFeederHoldsEachPressOneTick(t *testing.T) {
	var f Feeder
	f.Push('c')
	f.Push('a')
	fr := f.Next()
	if !fr.Down('c') || fr.Down('a') {
		t.Fatal("first tick should hold only c")
	}
	fr = f.Next()
	if !fr.Down('a') || fr.Down('c') {
		t.Fatal("second tick should hold only a")
	}
	if fr = f.Next(); fr.Down('a') {
		t.Error("press held past its tick")
	}
	for i := 0; i < maxQueued+10; i++ {
		f.Push('x')
	}
	if f.Pending() != maxQueued {
		t.Errorf("pending = %d, want %d", f.Pending(), maxQueued)
	}
}

func TestViewDrawsBannerAndAvatar(t *testing.T) {
	screen := newScreen(t)
	s := testScene(t)
	NewView(screen).Draw(s)

	if top := row(screen, 0); !strings.Contains(top, scene.TextPaused) {
		t.Errorf("top row = %q", top)
	}
	found := false
	for y := 0; y < 24 && !found; y++ {
		found = strings.ContainsRune(row(screen, y), '@')
	}
	if !found {
		t.Error("avatar not drawn")
	}
}

func TestAppTypesQueuedKeys(t *testing.T) {
	screen := newScreen(t)
	s := testScene(t)
	app := NewApp(screen, s)

	app.Feed('2')
	app.Step(1.0 / 60)
	if s.Paused() {
		t.Fatal("2 did not unpause")
	}
	s.SpawnEnemy(0, "cat")
	for _, r := range "cat" {
		app.Feed(input.Key(r))
	}
	for i := 0; i < 3; i++ {
		app.Step(1.0 / 60)
	}
	if s.Word(0) != "" {
		t.Errorf("word = %q after typing it", s.Word(0))
	}
	if !app.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("resize ended the app")
	}
}

package scene

import (
	"fmt"
	"math/rand/v2"

	"typer3d/internal/asset"
	"typer3d/internal/config"
	"typer3d/internal/dictionary"
	"typer3d/internal/spawn"
)

// Load reads the assets and dictionary named by st and returns an initialized
// scene tuned by st. A non-zero st.Seed makes the run reproducible. opts apply
// after the settings.
func Load(st config.Settings, opts ...Option) (*Scene, error) {
	lib, err := asset.LoadLibrary(st.AssetDir, st.Assets)
	if err != nil {
		return nil, err
	}
	dict, err := dictionary.LoadFile(st.Dictionary)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithSpawner(spawn.New(st.Spawn)),
		WithLevelThresholds(st.Levels.Level2After, st.Levels.Level3After),
	}
	if st.Seed != 0 {
		base = append(base, WithRand(rand.New(rand.NewPCG(st.Seed, st.Seed^0x7e57))))
	}

	s := New(lib, dict, append(base, opts...)...)
	s.SetAspect(st.Aspect())
	if err := s.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize scene: %w", err)
	}
	return s, nil
}

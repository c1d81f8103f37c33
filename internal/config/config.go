// Package config loads the game settings file and holds the runtime settings that
// can change while the game runs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"typer3d/internal/asset"
	"typer3d/internal/spawn"

	"gopkg.in/yaml.v3"
)

// WindowSettings sizes the game window.
type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LevelSettings holds the play time in seconds after which each level begins.
type LevelSettings struct {
	Level2After float32 `yaml:"level2_after"`
	Level3After float32 `yaml:"level3_after"`
}

// Settings is the contents of the settings file.
type Settings struct {
	Window     WindowSettings `yaml:"window"`
	FPSLimit   int            `yaml:"fps_limit"`
	AssetDir   string         `yaml:"asset_dir"`
	Dictionary string         `yaml:"dictionary"`
	Assets     asset.Manifest `yaml:"assets"`
	Levels     LevelSettings  `yaml:"levels"`
	Spawn      spawn.Config   `yaml:"spawn"`
	Mouse      float32        `yaml:"mouse_sensitivity"`
	Audio      bool           `yaml:"audio"`
	Seed       uint64         `yaml:"seed"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Window:     WindowSettings{Width: 900, Height: 700, Title: "typer3d"},
		FPSLimit:   60,
		AssetDir:   "res",
		Dictionary: "ospd.txt",
		Assets:     asset.DefaultManifest(),
		Levels:     LevelSettings{Level2After: 30, Level3After: 60},
		Spawn:      spawn.DefaultConfig(),
		Mouse:      0.02,
		Audio:      true,
	}
}

// Load reads settings from path over the defaults. A missing file yields the
// defaults; a malformed one is an error.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Validate rejects settings the game cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d", s.Window.Width, s.Window.Height)
	case s.FPSLimit < 0:
		return fmt.Errorf("negative fps_limit %d", s.FPSLimit)
	case s.Levels.Level2After < 0 || s.Levels.Level3After < s.Levels.Level2After:
		return fmt.Errorf("level thresholds %v/%v out of order", s.Levels.Level2After, s.Levels.Level3After)
	case s.Spawn.RollMax <= 0:
		return fmt.Errorf("spawn roll_max %d", s.Spawn.RollMax)
	}
	return nil
}

// Aspect returns the window aspect ratio.
func (s Settings) Aspect() float32 {
	return float32(s.Window.Width) / float32(s.Window.Height)
}

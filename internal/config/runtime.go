package config

import "sync"

// RuntimeSettings holds settings the player can change mid-game.
type RuntimeSettings struct {
	mu          sync.RWMutex
	fpsLimit    int
	sensitivity float32
	profiling   bool
}

var globalRuntime = &RuntimeSettings{
	fpsLimit:    60,
	sensitivity: 0.02,
}

// Apply copies the file settings into the runtime settings.
func Apply(s Settings) {
	SetFPSLimit(s.FPSLimit)
	SetMouseSensitivity(s.Mouse)
}

// GetFPSLimit returns the frame cap; 0 means uncapped.
func GetFPSLimit() int {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.fpsLimit
}

// SetFPSLimit sets the frame cap, clamped to 0 (uncapped) or 30..240.
func SetFPSLimit(fps int) {
	globalRuntime.mu.Lock()
	defer globalRuntime.mu.Unlock()
	switch {
	case fps <= 0:
		fps = 0
	case fps < 30:
		fps = 30
	case fps > 240:
		fps = 240
	}
	globalRuntime.fpsLimit = fps
}

// GetMouseSensitivity returns radians of look per pixel of drag.
func GetMouseSensitivity() float32 {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.sensitivity
}

// SetMouseSensitivity sets radians of look per pixel of drag.
func SetMouseSensitivity(s float32) {
	if s <= 0 {
		return
	}
	globalRuntime.mu.Lock()
	defer globalRuntime.mu.Unlock()
	globalRuntime.sensitivity = s
}

// GetProfiling reports whether per-frame timings are logged.
func GetProfiling() bool {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.profiling
}

// SetProfiling toggles per-frame timing logs.
func SetProfiling(on bool) {
	globalRuntime.mu.Lock()
	defer globalRuntime.mu.Unlock()
	globalRuntime.profiling = on
}

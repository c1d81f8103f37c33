// Package spawn decides when and where new enemies appear.
package spawn

import (
	"math"

	"typer3d/internal/entity"
	"typer3d/internal/invariant"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// LaneDistance is how far from the hub center enemies appear.
	LaneDistance = 8
	// SpawnHeight is the height enemies appear at.
	SpawnHeight = 1.5
	// EnemyScale shrinks the enemy mesh to world size.
	EnemyScale = 0.005
)

// Config tunes the per-tick spawn roll. A roll succeeds when
//
//	floor(U[0,RollMax] * (1 + RollGain*level)) > Threshold * (ThresholdBase + ThresholdGain*level)
type Config struct {
	RollMax       int     `yaml:"roll_max"`
	RollGain      float64 `yaml:"roll_gain"`
	Threshold     float64 `yaml:"threshold"`
	ThresholdBase float64 `yaml:"threshold_base"`
	ThresholdGain float64 `yaml:"threshold_gain"`
}

// DefaultConfig gives roughly 0.95%, 3.6% and 5.9% spawn chance per tick at levels
// 1, 2 and 3.
func DefaultConfig() Config {
	return Config{
		RollMax:       10000,
		RollGain:      0.05,
		Threshold:     10400,
		ThresholdBase: 0.98,
		ThresholdGain: 0.02,
	}
}

// Spawner rolls for new enemies.
type Spawner struct {
	Config
}

// New creates a spawner. A zero RollMax falls back to the defaults.
func New(cfg Config) *Spawner {
	if cfg.RollMax <= 0 {
		cfg = DefaultConfig()
	}
	return &Spawner{Config: cfg}
}

// Roll draws once and reports whether an enemy should spawn this tick.
func (s *Spawner) Roll(level int, rng entity.Rand) bool {
	return s.succeeds(rng.IntN(s.RollMax+1), level)
}

// Lane picks a lane uniformly.
func (s *Spawner) Lane(rng entity.Rand) int {
	return rng.IntN(entity.LaneCount)
}

// Chance returns the exact per-tick spawn probability at level.
func (s *Spawner) Chance(level int) float64 {
	hits := 0
	for u := 0; u <= s.RollMax; u++ {
		if s.succeeds(u, level) {
			hits++
		}
	}
	return float64(hits) / float64(s.RollMax+1)
}

func (s *Spawner) succeeds(u, level int) bool {
	l := float64(level)
	likelihood := math.Floor(float64(u) * (1 + s.RollGain*l))
	return likelihood > s.Threshold*(s.ThresholdBase+s.ThresholdGain*l)
}

// LaneAngle is the heading of lane in radians. Lanes are numbered so that turning
// left moves to the next lower lane.
func LaneAngle(lane int) float32 {
	return -float32(lane) * math32.Pi / 2
}

// Placement returns where an enemy for lane appears and the yaw in degrees that
// faces it toward the hub.
func Placement(lane int) (pos mgl32.Vec3, facing float32) {
	invariant.Check(lane >= 0 && lane < entity.LaneCount, "lane %d out of range", lane)
	phi := LaneAngle(lane)
	pos = mgl32.Vec3{LaneDistance * math32.Sin(phi), SpawnHeight, LaneDistance * math32.Cos(phi)}
	return pos, float32(180 - 90*lane)
}

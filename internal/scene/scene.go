// Package scene runs the game simulation: it owns every object, the camera, the
// lane words and the mode flags, and advances them one tick at a time.
package scene

import (
	"math/rand/v2"
	"time"

	"typer3d/internal/asset"
	"typer3d/internal/camera"
	"typer3d/internal/dictionary"
	"typer3d/internal/entity"
	"typer3d/internal/input"
	"typer3d/internal/light"
	"typer3d/internal/spawn"
)

// Default elapsed play time in seconds after which levels 2 and 3 begin.
const (
	DefaultLevel2After = 30
	DefaultLevel3After = 60

	MaxLevel = 3
)

// WordSource hands out words for a level. *dictionary.Dictionary satisfies it.
type WordSource interface {
	Pick(level int, rng dictionary.Rand) (string, bool)
}

// Option configures a Scene.
type Option func(*Scene)

// WithRand replaces the random source used for spawns, words and projectile jitter.
func WithRand(r entity.Rand) Option {
	return func(s *Scene) { s.rng = r }
}

// WithSpawner replaces the spawn roll.
func WithSpawner(sp *spawn.Spawner) Option {
	return func(s *Scene) { s.spawner = sp }
}

// WithLevelThresholds sets the play time in seconds after which levels 2 and 3 begin.
func WithLevelThresholds(level2, level3 float32) Option {
	return func(s *Scene) { s.thresholds = [2]float32{level2, level3} }
}

// WithListener subscribes l to scene events.
func WithListener(l Listener) Option {
	return func(s *Scene) { s.listeners = append(s.listeners, l) }
}

type laneEntry struct {
	id     entity.ID
	health int
	killed bool
}

// Scene is the simulation root. It is not safe for concurrent use.
type Scene struct {
	lib        *asset.Library
	words      WordSource
	assets     assets
	rng        entity.Rand
	spawner    *spawn.Spawner
	thresholds [2]float32
	listeners  []Listener

	camera *camera.Camera
	aspect float32
	lights []light.Source
	store  *entity.Store
	ground *entity.Object
	avatar entity.ID

	lane       int
	laneWords  [entity.LaneCount]string
	typed      [entity.LaneCount]int
	laneTarget [entity.LaneCount][]laneEntry

	f1Latch, f2Latch, pauseLatch input.Latch

	noClip      bool
	showSpheres bool
	gameOver    bool
	paused      bool
	level       int
	elapsed     float32
}

// New creates a scene drawing assets from lib and words from words. Call Initialize
// before the first Control.
func New(lib *asset.Library, words WordSource, opts ...Option) *Scene {
	s := &Scene{
		lib:        lib,
		words:      words,
		rng:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x7e57)),
		spawner:    spawn.New(spawn.DefaultConfig()),
		thresholds: [2]float32{DefaultLevel2After, DefaultLevel3After},
		camera:     camera.New(),
		aspect:     1,
		store:      entity.NewStore(),
		paused:     true,
		level:      1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe adds a listener after construction.
func (s *Scene) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// SetAspect sets the camera aspect ratio, kept across resets.
func (s *Scene) SetAspect(a float32) {
	s.aspect = a
	s.camera.SetAspect(a)
}

// Objects returns every live object in container order.
func (s *Scene) Objects() []*entity.Object { return s.store.Objects() }

// Avatar returns the player object, or nil before Initialize.
func (s *Scene) Avatar() *entity.Object { return s.store.Get(s.avatar) }

// Ground returns the floor tile.
func (s *Scene) Ground() *entity.Object { return s.ground }

// Rand returns the scene's random source.
func (s *Scene) Rand() entity.Rand { return s.rng }

// EnemyInLane returns the most recently spawned enemy of lane that is still in the
// scene, or nil.
func (s *Scene) EnemyInLane(lane int) *entity.Object {
	if lane < 0 || lane >= entity.LaneCount {
		return nil
	}
	entries := s.laneTarget[lane]
	for i := len(entries) - 1; i >= 0; i-- {
		if o := s.store.Get(entries[i].id); o != nil {
			return o
		}
	}
	return nil
}

func (s *Scene) Camera() *camera.Camera  { return s.camera }
func (s *Scene) Lights() []light.Source  { return s.lights }
func (s *Scene) Level() int              { return s.level }
func (s *Scene) Elapsed() float32        { return s.elapsed }
func (s *Scene) Paused() bool            { return s.paused }
func (s *Scene) GameOver() bool          { return s.gameOver }
func (s *Scene) NoClip() bool            { return s.noClip }
func (s *Scene) ShowSpheres() bool       { return s.showSpheres }
func (s *Scene) LaneIndex() int          { return s.lane }
func (s *Scene) Word(lane int) string    { return s.laneWords[lane] }
func (s *Scene) TypedIndex(lane int) int { return s.typed[lane] }

// SetWord assigns a word to lane without spawning an enemy.
func (s *Scene) SetWord(lane int, word string) {
	s.laneWords[lane] = word
	s.typed[lane] = 0
}

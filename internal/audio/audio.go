// Package audio plays short synthesized cues for scene events.
package audio

import (
	"math"
	"sync"
	"time"

	"typer3d/internal/scene"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

// cues maps events to note sequences. Events without an entry are silent.
var cues = map[scene.EventKind][]note{
	scene.EventShot:          {{880, 40 * time.Millisecond}},
	scene.EventEnemyHit:      {{440, 60 * time.Millisecond}},
	scene.EventEnemyKilled:   {{523, 80 * time.Millisecond}, {784, 120 * time.Millisecond}},
	scene.EventWordCompleted: {{660, 60 * time.Millisecond}, {990, 60 * time.Millisecond}},
	scene.EventSpawned:       {{220, 90 * time.Millisecond}},
	scene.EventLevelUp:       {{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond}, {784, 160 * time.Millisecond}},
	scene.EventGameOver:      {{330, 200 * time.Millisecond}, {247, 200 * time.Millisecond}, {165, 400 * time.Millisecond}},
}

// Cue builds the streamer for an event, or nil when the event has no sound.
func Cue(kind scene.EventKind) beep.Streamer {
	notes, ok := cues[kind]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: math.Log2(0.3)}
}

// Player mixes cues into the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. It stays silent until Init succeeds.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// OnEvent plays the cue for ev. It is a scene.Listener.
func (p *Player) OnEvent(ev scene.Event) {
	s := Cue(ev.Kind)
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

package scene

import (
	"log"

	"typer3d/internal/camera"
	"typer3d/internal/entity"
	"typer3d/internal/input"
	"typer3d/internal/invariant"
	"typer3d/internal/profiling"
	"typer3d/internal/spawn"
	"typer3d/internal/vmath"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ProjectileScale shrinks the fireball mesh to world size.
	ProjectileScale = 0.1
	// AvatarTurnSpin is how far the avatar spins per tick while orbiting.
	AvatarTurnSpin = 5
)

// Control advances the simulation by one tick of dt seconds using the input state f.
//
// The order is fixed: level, typing, F1/F2 toggles, camera (a game over stops here
// and only waits for restart), pause (a paused game stops here), avatar orbit,
// reaping of dead objects (a dead avatar ends the game), per-object control, and
// finally the spawn roll.
func (s *Scene) Control(dt float32, f *input.Frame) {
	defer profiling.Track("scene.Control")()

	if !s.paused && !s.gameOver {
		s.elapsed += dt
	}
	s.advanceLevel()

	s.handleTyping(f)

	if s.f1Latch.Rising(f.Down(input.KeyF1)) {
		s.noClip = !s.noClip
	}
	if s.f2Latch.Rising(f.Down(input.KeyF2)) {
		s.showSpheres = !s.showSpheres
	}

	turn := s.camera.Update(dt, f, s.noClip)

	if s.gameOver {
		if f.Down('1') {
			s.Reset()
			s.emit(Event{Kind: EventRestart, Level: s.level})
		}
		return
	}

	if s.pauseLatch.Rising(f.Down('2')) {
		s.paused = !s.paused
		s.emit(Event{Kind: EventPauseToggled, Paused: s.paused})
	}
	if s.paused {
		return
	}

	s.orbitAvatar(turn)

	if s.reap() {
		return
	}

	func() {
		defer profiling.Track("scene.ControlObjects")()
		for _, o := range s.store.Objects() {
			o.Control(s, s.level)
		}
	}()
	s.trackLaneTargets()

	s.rollSpawn()
}

func (s *Scene) advanceLevel() {
	if (s.elapsed > s.thresholds[0] && s.level < 2) || (s.elapsed > s.thresholds[1] && s.level < MaxLevel) {
		s.level++
		log.Printf("Level %d!", s.level)
		s.emit(Event{Kind: EventLevelUp, Level: s.level})
	}
}

// handleTyping advances the active lane's word while its next character is held.
func (s *Scene) handleTyping(f *input.Frame) {
	lane := s.lane
	word := s.laneWords[lane]
	if word == "" {
		return
	}
	avatar := s.Avatar()
	if avatar == nil {
		invariant.Once("scene: typing with no avatar")
		return
	}
	if !f.Down(input.Key(word[s.typed[lane]])) {
		return
	}

	s.typed[lane]++
	p := entity.NewProjectile(s.assets.fireball, s.assets.fire, lane).
		Scale(vmath.Splat(ProjectileScale)).
		Translate(avatar.Center())
	s.store.Add(p)
	s.emit(Event{Kind: EventShot, Lane: lane, Word: word})

	if s.typed[lane] >= len(word) {
		s.typed[lane] = 0
		s.laneWords[lane] = ""
		log.Printf("Success: typed word %q", word)
		s.emit(Event{Kind: EventWordCompleted, Lane: lane, Word: word})
	}
}

// orbitAvatar keeps the avatar on the unit circle around the hub in step with the
// camera turn, and moves to the next lane when the turn completes.
func (s *Scene) orbitAvatar(turn camera.TurnEvent) {
	if turn.Kind == camera.TurnNone {
		return
	}
	avatar := s.Avatar()
	if avatar == nil {
		invariant.Once("scene: turning with no avatar")
		return
	}

	progress := turn.Progress
	if turn.Kind != camera.TurnStarted {
		avatar.Rotate(turn.Dir.Sign() * AvatarTurnSpin)
	}
	if turn.Kind == camera.TurnCompleted {
		if turn.Dir == camera.Left {
			s.lane = (s.lane + entity.LaneCount - 1) % entity.LaneCount
		} else {
			s.lane = (s.lane + 1) % entity.LaneCount
		}
		progress = 0
		s.emit(Event{Kind: EventTurnCompleted, Lane: s.lane})
	}

	theta := spawn.LaneAngle(s.lane) + turn.Dir.Sign()*mgl32.DegToRad(progress)
	target := mgl32.Vec3{math32.Sin(theta), 0, math32.Cos(theta)}
	avatar.Translate(target.Sub(avatar.Position()))
}

// reap removes dead objects. It reports true when the avatar died, which ends the
// game and leaves the scene untouched for the game-over screen.
func (s *Scene) reap() bool {
	defer profiling.Track("scene.Reap")()
	if a := s.Avatar(); a != nil && a.IsDead() {
		s.gameOver = true
		log.Printf("Game over at level %d", s.level)
		s.emit(Event{Kind: EventGameOver, Level: s.level})
		return true
	}
	removed := s.store.RemoveIf((*entity.Object).IsDead)
	for _, o := range removed {
		if e := o.Enemy(); e != nil {
			s.dropLaneTarget(e.Lane, o.ID())
		}
	}
	return false
}

// trackLaneTargets reports hits and kills on lane enemies since the last tick.
func (s *Scene) trackLaneTargets() {
	for lane := range s.laneTarget {
		entries := s.laneTarget[lane]
		for i := range entries {
			en := &entries[i]
			o := s.store.Get(en.id)
			if o == nil || en.killed {
				continue
			}
			e := o.Enemy()
			if e.Health < en.health {
				en.health = e.Health
				s.emit(Event{Kind: EventEnemyHit, Lane: lane})
			}
			if o.IsDead() {
				en.killed = true
				s.emit(Event{Kind: EventEnemyKilled, Lane: lane})
			}
		}
	}
}

func (s *Scene) dropLaneTarget(lane int, id entity.ID) {
	entries := s.laneTarget[lane]
	for i, en := range entries {
		if en.id == id {
			s.laneTarget[lane] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

func (s *Scene) rollSpawn() {
	if !s.spawner.Roll(s.level, s.rng) {
		return
	}
	lane := s.spawner.Lane(s.rng)
	if s.laneWords[lane] != "" {
		return
	}
	word, ok := s.words.Pick(s.level, s.rng)
	if !ok {
		invariant.Once("scene: no words for level")
		return
	}
	s.SpawnEnemy(lane, word)
}

// SpawnEnemy assigns word to lane and places an enemy for it at the lane's spawn
// point with one point of health per character.
func (s *Scene) SpawnEnemy(lane int, word string) *entity.Object {
	if lane < 0 || lane >= entity.LaneCount || word == "" {
		invariant.Check(false, "spawn in lane %d with word %q", lane, word)
		return nil
	}

	s.SetWord(lane, word)
	pos, facing := spawn.Placement(lane)
	e := entity.NewEnemy(s.assets.enemy, s.assets.enemySkin, lane, len(word)).
		Scale(vmath.Splat(spawn.EnemyScale)).
		Translate(pos).
		Rotate(facing)
	id := s.store.Add(e)
	s.laneTarget[lane] = append(s.laneTarget[lane], laneEntry{id: id, health: len(word)})

	log.Printf("Word #%d is now: %s", lane, word)
	s.emit(Event{Kind: EventSpawned, Lane: lane, Word: word})
	return e
}

package scene

// EventKind identifies something that happened during Control.
type EventKind int

const (
	EventLevelUp EventKind = iota
	EventShot
	EventWordCompleted
	EventEnemyHit
	EventEnemyKilled
	EventSpawned
	EventGameOver
	EventRestart
	EventPauseToggled
	EventTurnCompleted
)

var eventNames = [...]string{
	EventLevelUp:       "level-up",
	EventShot:          "shot",
	EventWordCompleted: "word-completed",
	EventEnemyHit:      "enemy-hit",
	EventEnemyKilled:   "enemy-killed",
	EventSpawned:       "spawned",
	EventGameOver:      "game-over",
	EventRestart:       "restart",
	EventPauseToggled:  "pause-toggled",
	EventTurnCompleted: "turn-completed",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event carries the lane and word involved where that applies.
type Event struct {
	Kind   EventKind
	Lane   int
	Word   string
	Level  int
	Paused bool
}

// Listener receives events synchronously from Control.
type Listener func(Event)

func (s *Scene) emit(ev Event) {
	for _, l := range s.listeners {
		l(ev)
	}
}

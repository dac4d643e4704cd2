package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the session state for determinism testing and debugging.
type Snapshot struct {
	Tick       uint64
	State      State
	Seed       int64
	SnakeLen   int
	Head       core.Point
	Dir        Direction
	Food       core.Point
	LastHit    Collision
	DeathCause string
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.tick,
		State:      s.state,
		Seed:       s.seed,
		Food:       s.food.Position,
		LastHit:    s.lastHit,
		DeathCause: s.DeathCause(),
	}
	if s.snake != nil {
		snap.SnakeLen = s.snake.Len()
		snap.Head = s.snake.Head()
		snap.Dir = s.snake.Direction()
	}
	return snap
}

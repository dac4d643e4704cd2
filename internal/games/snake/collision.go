package snake

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Collision is a set of the collisions found in one tick.
type Collision uint8

const (
	CollisionWall Collision = 1 << iota
	CollisionSelf
	CollisionFood
)

// Has reports whether c contains every flag in other.
func (c Collision) Has(other Collision) bool {
	return c&other == other
}

func (c Collision) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	if c.Has(CollisionWall) {
		parts = append(parts, "wall")
	}
	if c.Has(CollisionSelf) {
		parts = append(parts, "self")
	}
	if c.Has(CollisionFood) {
		parts = append(parts, "food")
	}
	return strings.Join(parts, "+")
}

// DetectCollisions evaluates the state after a move and applies its effects.
//
// Death checks run first: a head on the border kills the snake, and so does
// every body segment sharing the head's cell. The food check runs last on a
// fresh read of the head; eating feeds the snake and returns a newly spawned
// food. On a tick where the snake both dies and eats, both effects apply.
// When nothing is eaten the returned food is the one passed in.
func DetectCollisions(field core.Field, s *Snake, food Food, rng *rand.Rand) (Food, Collision) {
	var hit Collision
	if s.Len() == 0 {
		return food, hit
	}

	head := s.Head()
	if field.IsWall(head) {
		s.Kill()
		hit |= CollisionWall
	}

	for i := 1; i < s.Len(); i++ {
		if s.Segment(i) == head {
			s.Kill()
			hit |= CollisionSelf
		}
	}

	if s.Head() == food.Position {
		s.Feed()
		food = SpawnFood(field, rng)
		hit |= CollisionFood
	}

	return food, hit
}

package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the single piece of food on the field. It is replaced, never
// moved, when eaten.
type Food struct {
	Position core.Point
}

// SpawnFood places food uniformly at random strictly inside the wall:
// x in [1, width-2] and y in [1, height-2].
//
// The snake's body is not consulted, so food may appear under the snake.
// That is the established behaviour of the game and kept on purpose.
func SpawnFood(field core.Field, rng *rand.Rand) Food {
	return Food{
		Position: core.Point{
			X: 1 + rng.Intn(field.Width-2),
			Y: 1 + rng.Intn(field.Height-2),
		},
	}
}

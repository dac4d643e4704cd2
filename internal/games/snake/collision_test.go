package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// zeroSource makes every rng.Intn return 0, so food always lands on (1, 1).
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

func zeroRand() *rand.Rand {
	return rand.New(zeroSource{})
}

func TestWallDeath(t *testing.T) {
	field := core.NewField(20, 20)
	s := NewSnake([]core.Point{{X: 1, Y: 10}, {X: 2, Y: 10}, {X: 3, Y: 10}, {X: 4, Y: 10}}, DirLeft)
	food := Food{Position: core.Point{X: 5, Y: 5}}

	s.MoveForward()
	if s.Head() != (core.Point{X: 0, Y: 10}) {
		t.Fatalf("Head() = %v, expected (0, 10)", s.Head())
	}

	_, hit := DetectCollisions(field, s, food, zeroRand())

	if s.Alive() {
		t.Error("snake should die on the wall")
	}
	if !hit.Has(CollisionWall) {
		t.Errorf("collision = %v, expected wall", hit)
	}
}

func TestWallCells(t *testing.T) {
	field := core.NewField(20, 20)

	tests := []struct {
		name  string
		head  core.Point
		alive bool
	}{
		{"left wall", core.Point{X: 0, Y: 5}, false},
		{"right wall", core.Point{X: 19, Y: 5}, false},
		{"top wall", core.Point{X: 5, Y: 0}, false},
		{"bottom wall", core.Point{X: 5, Y: 19}, false},
		{"inside near right", core.Point{X: 18, Y: 5}, true},
		{"inside near bottom", core.Point{X: 5, Y: 18}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake([]core.Point{tc.head}, DirRight)
			DetectCollisions(field, s, Food{Position: core.Point{X: 10, Y: 10}}, zeroRand())
			if s.Alive() != tc.alive {
				t.Errorf("Alive() = %v, expected %v", s.Alive(), tc.alive)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	field := core.NewField(20, 20)
	s := NewSnake([]core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}, {X: 7, Y: 10}}, DirUp)

	// Force the head onto its own body
	s.body[0] = s.body[2]

	_, hit := DetectCollisions(field, s, Food{Position: core.Point{X: 1, Y: 1}}, zeroRand())

	if s.Alive() {
		t.Error("snake should die when its head hits its body")
	}
	if !hit.Has(CollisionSelf) {
		t.Errorf("collision = %v, expected self", hit)
	}
	if hit.Has(CollisionWall) {
		t.Errorf("collision = %v, should not include wall", hit)
	}
}

func TestStackedTailIsNotSelfCollision(t *testing.T) {
	field := core.NewField(20, 20)
	s := NewSnake([]core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}}, DirRight)
	s.Feed() // Tail segment duplicated

	DetectCollisions(field, s, Food{Position: core.Point{X: 1, Y: 1}}, zeroRand())

	if !s.Alive() {
		t.Error("overlapping tail segments must not kill the snake")
	}
}

func TestFeed(t *testing.T) {
	field := core.NewField(20, 20)
	s := NewSnake([]core.Point{{X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}}, DirRight)
	food := Food{Position: core.Point{X: 5, Y: 5}}

	s.MoveForward()
	newFood, hit := DetectCollisions(field, s, food, zeroRand())

	if !s.Alive() {
		t.Error("eating should not kill the snake")
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", s.Len())
	}
	if !hit.Has(CollisionFood) {
		t.Errorf("collision = %v, expected food", hit)
	}
	if newFood.Position == (core.Point{X: 5, Y: 5}) {
		t.Error("food should respawn elsewhere")
	}
	if newFood.Position != (core.Point{X: 1, Y: 1}) {
		t.Errorf("respawned food = %v, expected (1, 1) from the zero source", newFood.Position)
	}
}

func TestNoFoodKeepsFood(t *testing.T) {
	field := core.NewField(20, 20)
	s := NewSnake([]core.Point{{X: 10, Y: 10}}, DirRight)
	food := Food{Position: core.Point{X: 3, Y: 3}}

	got, hit := DetectCollisions(field, s, food, zeroRand())

	if got != food {
		t.Errorf("food = %v, expected unchanged %v", got, food)
	}
	if hit != 0 {
		t.Errorf("collision = %v, expected none", hit)
	}
}

func TestDeathAndFeedInSameTick(t *testing.T) {
	field := core.NewField(20, 20)
	s := NewSnake([]core.Point{{X: 1, Y: 10}, {X: 2, Y: 10}, {X: 3, Y: 10}}, DirLeft)
	// Food can never spawn on the wall; place it there directly
	food := Food{Position: core.Point{X: 0, Y: 10}}

	s.MoveForward()
	_, hit := DetectCollisions(field, s, food, zeroRand())

	if s.Alive() {
		t.Error("snake should be dead")
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, expected 4: feeding still applies on a fatal tick", s.Len())
	}
	if !hit.Has(CollisionWall | CollisionFood) {
		t.Errorf("collision = %v, expected wall+food", hit)
	}
}

func TestCollisionString(t *testing.T) {
	tests := []struct {
		c        Collision
		expected string
	}{
		{0, "none"},
		{CollisionWall, "wall"},
		{CollisionSelf | CollisionFood, "self+food"},
		{CollisionWall | CollisionSelf | CollisionFood, "wall+self+food"},
	}
	for _, tc := range tests {
		if tc.c.String() != tc.expected {
			t.Errorf("String() = %q, expected %q", tc.c.String(), tc.expected)
		}
	}
}

func TestSpawnFoodRange(t *testing.T) {
	field := core.NewField(20, 12)
	rng := rand.New(rand.NewSource(7))

	seenMinX, seenMaxX := false, false
	for i := 0; i < 5000; i++ {
		p := SpawnFood(field, rng).Position
		if p.X < 1 || p.X > field.Width-2 || p.Y < 1 || p.Y > field.Height-2 {
			t.Fatalf("food spawned outside the interior at %v", p)
		}
		if field.IsWall(p) {
			t.Fatalf("food spawned on the wall at %v", p)
		}
		seenMinX = seenMinX || p.X == 1
		seenMaxX = seenMaxX || p.X == field.Width-2
	}

	if !seenMinX || !seenMaxX {
		t.Error("food should reach both ends of the interior range")
	}
}

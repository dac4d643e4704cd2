package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is the player-controlled actor. The head is body[0], the tail is
// the last element, and the body length is the snake's length.
type Snake struct {
	body      []core.Point
	direction Direction
	alive     bool
}

// NewSnake creates a living snake with a copy of body, facing dir.
func NewSnake(body []core.Point, dir Direction) *Snake {
	b := make([]core.Point, len(body))
	copy(b, body)
	return &Snake{
		body:      b,
		direction: dir,
		alive:     true,
	}
}

// MoveForward shifts every segment onto its predecessor, tail first, then
// steps the head one cell in the current direction. It never checks walls
// or collisions.
func (s *Snake) MoveForward() {
	if len(s.body) == 0 {
		return
	}
	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	s.body[0] = s.body[0].Add(s.direction.Delta())
}

// SetDirection changes direction unless dir is the reverse of the current
// one, which would turn the head into the neck. It reports whether the
// request was accepted.
func (s *Snake) SetDirection(dir Direction) bool {
	if dir == s.direction.Opposite() {
		return false
	}
	s.direction = dir
	return true
}

// Feed grows the snake by one segment stacked on the current tail. The new
// segment separates from the tail on the next move.
func (s *Snake) Feed() {
	if len(s.body) == 0 {
		return
	}
	s.body = append(s.body, s.body[len(s.body)-1])
}

// Kill marks the snake dead. It cannot be revived.
func (s *Snake) Kill() {
	s.alive = false
}

// Alive reports whether the snake is still alive.
func (s *Snake) Alive() bool {
	return s.alive
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the head position. An empty snake reports the zero point.
func (s *Snake) Head() core.Point {
	if len(s.body) == 0 {
		return core.Point{}
	}
	return s.body[0]
}

// Segment returns the position of segment i.
func (s *Snake) Segment(i int) core.Point {
	return s.body[i]
}

// Body returns a copy of all segments, head first.
func (s *Snake) Body() []core.Point {
	b := make([]core.Point, len(s.body))
	copy(b, s.body)
	return b
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

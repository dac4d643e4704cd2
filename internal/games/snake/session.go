// Package snake implements the snake game: the snake itself, its food, the
// collision rules and the fixed-tick session that drives them.
//
// The package never touches the terminal. A Session draws through a
// core.Renderer and samples a core.Keyboard, both supplied by the caller.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the lifecycle state of a session.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Session owns one game: the field, the snake and the food. It is not safe
// for concurrent use; every method must be called from the tick goroutine.
type Session struct {
	field    core.Field
	snake    *Snake
	food     Food
	rng      *rand.Rand
	seed     int64
	state    State
	tick     uint64
	lastHit  Collision
	interval time.Duration
	startLen int

	renderer core.Renderer
	keyboard core.Keyboard
	bindings map[core.Key]Direction
	logger   *log.Logger

	wallGlyph  rune
	foodGlyph  rune
	snakeGlyph rune

	// sleep blocks between ticks; replaced in tests.
	sleep func(time.Duration)
}

// NewSession creates a session from a validated config. The renderer and
// keyboard are the session's only contact with the outside world. A nil
// logger discards all log output.
func NewSession(cfg config.SnakeConfig, renderer core.Renderer, keyboard core.Keyboard, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if keyboard == nil {
		keyboard = core.NoKeys{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	wall, food, body := cfg.Glyphs.Runes()
	keys := cfg.Keys.Normalized()

	return &Session{
		field:    core.NewField(cfg.Field.Width, cfg.Field.Height),
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
		interval: cfg.TickInterval(),
		startLen: cfg.Snake.StartLength,
		renderer: renderer,
		keyboard: keyboard,
		bindings: map[core.Key]Direction{
			core.Key(keys.Up):    DirUp,
			core.Key(keys.Left):  DirLeft,
			core.Key(keys.Down):  DirDown,
			core.Key(keys.Right): DirRight,
		},
		logger:     logger,
		wallGlyph:  wall,
		foodGlyph:  food,
		snakeGlyph: body,
		sleep:      time.Sleep,
	}
}

// Init seeds the snake at the centre of the field facing right, with the
// rest of its body trailing to the left, and places the first food.
func (s *Session) Init() {
	head := s.field.Center()
	body := make([]core.Point, s.startLen)
	for i := range body {
		body[i] = core.Point{X: head.X - i, Y: head.Y}
	}

	s.snake = NewSnake(body, DirRight)
	s.food = SpawnFood(s.field, s.rng)
	s.state = StateRunning
	s.tick = 0
	s.lastHit = 0

	s.logger.Info("session started",
		"field", fmt.Sprintf("%dx%d", s.field.Width, s.field.Height),
		"tick", s.interval,
		"seed", s.seed,
	)
}

// Run steps the session and sleeps one tick interval between steps until
// the snake dies. A render error stops the loop at once and is returned.
// The sleep cannot be interrupted.
func (s *Session) Run() error {
	if s.snake == nil {
		s.Init()
	}
	for s.state == StateRunning {
		if err := s.Step(); err != nil {
			return err
		}
		if s.state == StateTerminated {
			break
		}
		s.sleep(s.interval)
	}
	return nil
}

// Step runs exactly one tick: clear, sample input, move, render, detect
// collisions and update the state. It is a no-op once the session has
// terminated.
func (s *Session) Step() error {
	if s.snake == nil {
		s.Init()
	}
	if s.state == StateTerminated {
		return nil
	}
	s.tick++

	if err := s.renderer.ClearScreen(); err != nil {
		return s.renderFailed("clear screen", err)
	}

	s.applyInput()
	s.snake.MoveForward()

	if err := s.draw(); err != nil {
		return err
	}

	var hit Collision
	s.food, hit = DetectCollisions(s.field, s.snake, s.food, s.rng)
	s.lastHit = hit

	if hit.Has(CollisionFood) {
		s.logger.Debug("food eaten", "length", s.snake.Len(), "next", s.food.Position)
	}

	if !s.snake.Alive() {
		s.state = StateTerminated
		s.logger.Info("snake died",
			"cause", s.DeathCause(),
			"length", s.snake.Len(),
			"ticks", s.tick,
		)
	}
	return nil
}

// applyInput honours only the most recent key, and only if it is bound.
func (s *Session) applyInput() {
	key, ok := core.Last(s.keyboard.PressedKeys())
	if !ok {
		return
	}
	dir, bound := s.bindings[key]
	if !bound {
		return
	}
	before := s.snake.Direction()
	if s.snake.SetDirection(dir) && dir != before {
		s.logger.Debug("direction changed", "from", before, "to", dir)
	}
}

// draw renders the border, the food and the snake, then flushes the
// renderer if it buffers.
func (s *Session) draw() error {
	for _, p := range s.field.Border() {
		if err := s.plot(p, s.wallGlyph); err != nil {
			return err
		}
	}
	if err := s.plot(s.food.Position, s.foodGlyph); err != nil {
		return err
	}
	for i := 0; i < s.snake.Len(); i++ {
		if err := s.plot(s.snake.Segment(i), s.snakeGlyph); err != nil {
			return err
		}
	}

	if f, ok := s.renderer.(core.Flusher); ok {
		if err := f.Flush(); err != nil {
			return s.renderFailed("flush", err)
		}
	}
	return nil
}

func (s *Session) plot(p core.Point, r rune) error {
	if err := s.renderer.MoveCursorTo(p.X, p.Y); err != nil {
		return s.renderFailed("move cursor", err)
	}
	if err := s.renderer.PrintChar(r); err != nil {
		return s.renderFailed("print", err)
	}
	return nil
}

func (s *Session) renderFailed(op string, err error) error {
	s.logger.Error("render failed", "op", op, "tick", s.tick, "error", err)
	return fmt.Errorf("snake: %s: %w", op, err)
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Terminated reports whether the snake has died.
func (s *Session) Terminated() bool {
	return s.state == StateTerminated
}

// Interval returns the time between ticks.
func (s *Session) Interval() time.Duration {
	return s.interval
}

// DeathCause names what killed the snake, or "" while it is alive.
func (s *Session) DeathCause() string {
	if s.snake == nil || s.snake.Alive() {
		return ""
	}
	switch {
	case s.lastHit.Has(CollisionWall | CollisionSelf):
		return "wall+self"
	case s.lastHit.Has(CollisionWall):
		return "wall"
	case s.lastHit.Has(CollisionSelf):
		return "self"
	default:
		return "unknown"
	}
}

// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Field  FieldConfig `yaml:"field"`
	TickMS int         `yaml:"tick_ms"`
	Snake  SnakeBody   `yaml:"snake"`
	Keys   KeyBindings `yaml:"keys"`
	Glyphs Glyphs      `yaml:"glyphs"`
	Seed   int64       `yaml:"seed"` // 0 means seed from the clock
}

// FieldConfig defines the play field size, walls included.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeBody defines the starting snake.
type SnakeBody struct {
	StartLength int `yaml:"start_length"`
}

// KeyBindings names the four keys that steer the snake.
type KeyBindings struct {
	Up    string `yaml:"up"`
	Left  string `yaml:"left"`
	Down  string `yaml:"down"`
	Right string `yaml:"right"`
}

// Normalized returns the bindings with single-character keys lower-cased.
// The keyboards report printable keys in lower case, so "W" and "w" are
// the same key.
func (k KeyBindings) Normalized() KeyBindings {
	return KeyBindings{
		Up:    normalizeKey(k.Up),
		Left:  normalizeKey(k.Left),
		Down:  normalizeKey(k.Down),
		Right: normalizeKey(k.Right),
	}
}

func normalizeKey(key string) string {
	if utf8.RuneCountInString(key) == 1 {
		return strings.ToLower(key)
	}
	return key
}

// Glyphs defines the single character drawn for each element.
type Glyphs struct {
	Wall  string `yaml:"wall"`
	Food  string `yaml:"food"`
	Snake string `yaml:"snake"`
}

// TickInterval returns the time between two ticks.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Runes returns the wall, food and snake glyphs.
// Only meaningful on a validated config.
func (g Glyphs) Runes() (wall, food, snake rune) {
	wall, _ = utf8.DecodeRuneInString(g.Wall)
	food, _ = utf8.DecodeRuneInString(g.Food)
	snake, _ = utf8.DecodeRuneInString(g.Snake)
	return wall, food, snake
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Field.Width < 3 || c.Field.Height < 3 {
		errs = append(errs, fmt.Errorf("field %dx%d is too small, need at least 3x3", c.Field.Width, c.Field.Height))
	}
	if c.Snake.StartLength < 1 {
		errs = append(errs, fmt.Errorf("snake.start_length must be positive, got %d", c.Snake.StartLength))
	} else if c.Field.Width/2 < c.Snake.StartLength {
		// The body extends left from the centre and must not touch the wall.
		errs = append(errs, fmt.Errorf("snake.start_length %d does not fit a field %d wide", c.Snake.StartLength, c.Field.Width))
	}
	if c.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("tick_ms must be positive, got %d", c.TickMS))
	}

	keys := c.Keys.Normalized()
	seen := make(map[string]string, 4)
	for _, b := range []struct{ name, key string }{
		{"up", keys.Up},
		{"left", keys.Left},
		{"down", keys.Down},
		{"right", keys.Right},
	} {
		if b.key == "" {
			errs = append(errs, fmt.Errorf("keys.%s is empty", b.name))
			continue
		}
		if other, dup := seen[b.key]; dup {
			errs = append(errs, fmt.Errorf("key %q bound to both %s and %s", b.key, other, b.name))
			continue
		}
		seen[b.key] = b.name
	}

	for _, g := range []struct{ name, glyph string }{
		{"wall", c.Glyphs.Wall},
		{"food", c.Glyphs.Food},
		{"snake", c.Glyphs.Snake},
	} {
		if utf8.RuneCountInString(g.glyph) != 1 {
			errs = append(errs, fmt.Errorf("glyphs.%s must be a single character, got %q", g.name, g.glyph))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

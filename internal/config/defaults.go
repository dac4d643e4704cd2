package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: a 20x20 field,
// 100 ms ticks, a four segment snake steered with W/A/S/D.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: FieldConfig{
			Width:  20,
			Height: 20,
		},
		TickMS: 100,
		Snake: SnakeBody{
			StartLength: 4,
		},
		Keys: KeyBindings{
			Up:    "w",
			Left:  "a",
			Down:  "s",
			Right: "d",
		},
		Glyphs: Glyphs{
			Wall:  "H",
			Food:  "X",
			Snake: "O",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

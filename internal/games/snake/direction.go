package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirUp
	DirLeft
	DirDown
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return d
	}
}

// Delta returns the one-cell step for this direction. Y grows downwards.
func (d Direction) Delta() core.Point {
	switch d {
	case DirRight:
		return core.Point{X: 1}
	case DirLeft:
		return core.Point{X: -1}
	case DirDown:
		return core.Point{Y: 1}
	case DirUp:
		return core.Point{Y: -1}
	default:
		return core.Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

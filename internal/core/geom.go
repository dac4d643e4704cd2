// Package core provides the value types and collaborator interfaces shared by
// the game and its platforms. It has no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Point is a grid coordinate, 0-indexed with the origin at the top-left.
// It is a value type: copy it, never share it.
type Point struct {
	X, Y int
}

// Add returns the point offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Field describes the rectangular play area. Row/column 0 and the last
// row/column form the wall; the playable interior is strictly inside it.
type Field struct {
	Width  int
	Height int
}

// NewField creates a field with the given dimensions.
func NewField(width, height int) Field {
	return Field{Width: width, Height: height}
}

// IsWall reports whether p lies on the border of the field.
func (f Field) IsWall(p Point) bool {
	return p.X == 0 || p.X == f.Width-1 || p.Y == 0 || p.Y == f.Height-1
}

// Center returns the middle cell of the field.
func (f Field) Center() Point {
	return Point{X: f.Width / 2, Y: f.Height / 2}
}

// Border returns every wall cell, row by row.
func (f Field) Border() []Point {
	cells := make([]Point, 0, 2*f.Width+2*f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := Point{X: x, Y: y}
			if f.IsWall(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

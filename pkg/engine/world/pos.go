// Package world provides generic 2D grid primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Pos identifies a cell by row and column
type Pos struct {
	Row int
	Col int
}

// Offset returns the position shifted by the given deltas
func (p Pos) Offset(rowDelta, colDelta int) Pos {
	return Pos{Row: p.Row + rowDelta, Col: p.Col + colDelta}
}

// Step returns the adjacent position in the given direction
func (p Pos) Step(dir Direction) Pos {
	return p.Offset(dir.Delta())
}

// String returns the position as "(row,col)"
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

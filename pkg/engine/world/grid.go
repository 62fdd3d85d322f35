package world

// Grid is a fixed-size rectangular grid with encapsulated cell storage.
// Cells are stored by value in row-major order; callers mutate them
// through the pointers returned by GetCell and At.
type Grid[T any] struct {
	cells []T
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid[T any](rows, cols int) *Grid[T] {
	g := &Grid[T]{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions, discarding any previous cells
func (g *Grid[T]) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]T, rows*cols)
}

// Rows returns the number of rows in the grid
func (g *Grid[T]) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid[T]) Cols() int {
	return g.cols
}

// Size returns the total number of cells
func (g *Grid[T]) Size() int {
	return g.rows * g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid[T]) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains checks if a position is within grid bounds
func (g *Grid[T]) Contains(p Pos) bool {
	return g.IsValidPosition(p.Row, p.Col)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid[T]) GetCell(row, col int) *T {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// At returns the cell at p, or nil if out of bounds
func (g *Grid[T]) At(p Pos) *T {
	return g.GetCell(p.Row, p.Col)
}

// Center returns the center position, rounding down on even dimensions
func (g *Grid[T]) Center() Pos {
	return Pos{Row: g.rows / 2, Col: g.cols / 2}
}

// Clamp moves p onto the nearest in-bounds position
func (g *Grid[T]) Clamp(p Pos) Pos {
	return Pos{Row: clamp(p.Row, 0, g.rows-1), Col: clamp(p.Col, 0, g.cols-1)}
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid[T]) ForEachCell(fn func(row, col int, cell *T)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, &g.cells[row*g.cols+col])
		}
	}
}

// Neighbors returns the up-to-8 positions sharing an edge or corner with p,
// clipped at the grid boundary
func (g *Grid[T]) Neighbors(p Pos) []Pos {
	neighbors := make([]Pos, 0, 8)
	for _, dir := range AllDirections() {
		n := p.Step(dir)
		if g.Contains(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Window returns the clipped 3x3 block centred on p, p included.
// It holds 4 cells in a corner, 6 on an edge and 9 in the interior.
func (g *Grid[T]) Window(p Pos) []Pos {
	window := make([]Pos, 0, 9)
	for row := max(0, p.Row-1); row <= min(p.Row+1, g.rows-1); row++ {
		for col := max(0, p.Col-1); col <= min(p.Col+1, g.cols-1); col++ {
			window = append(window, Pos{Row: row, Col: col})
		}
	}
	return window
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

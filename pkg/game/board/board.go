// Package board implements the minesweeper board engine: mine placement,
// adjacency counts, flood-fill reveal, win/loss detection and danger levels.
package board

import (
	"fmt"

	"github.com/zyedidia/generic/stack"

	"minesweeper/pkg/engine/world"
)

// State is the lifecycle state of a board
type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// IsTerminal reports whether no further reveal can change the board
func (s State) IsTerminal() bool {
	return s == Won || s == Lost
}

// Result classifies what a single Reveal did
type Result int

const (
	// ResultUnchanged: the board was finished already or the cell was revealed
	ResultUnchanged Result = iota
	ResultContinued
	ResultDetonated
	ResultCleared
)

func (r Result) String() string {
	switch r {
	case ResultUnchanged:
		return "unchanged"
	case ResultContinued:
		return "continued"
	case ResultDetonated:
		return "detonated"
	case ResultCleared:
		return "cleared"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// RevealOutcome describes the effect of a Reveal call.
// Changed lists every position whose revealed flag flipped, in the order it flipped.
type RevealOutcome struct {
	Result  Result
	State   State
	Changed []world.Pos
}

// Cell is one square of the board
type Cell struct {
	IsMine        bool
	AdjacentMines int // meaningless when IsMine
	IsRevealed    bool
}

// Board is a single minesweeper game. It is not safe for concurrent mutation.
type Board struct {
	grid         *world.Grid[Cell]
	mines        int
	state        State
	revealedSafe int
}

type options struct {
	placer MinePlacer
}

// Option configures New
type Option func(*options)

// WithPlacer overrides the mine placement strategy
func WithPlacer(p MinePlacer) Option {
	return func(o *options) {
		o.placer = p
	}
}

// New creates a fully concealed board with mines placed and adjacency counts computed
func New(rows, cols, mines int, opts ...Option) (*Board, error) {
	if err := Validate(rows, cols, mines); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.placer == nil {
		o.placer = NewEntropyPlacer()
	}

	positions, err := o.placer.Place(rows, cols, mines)
	if err != nil {
		return nil, err
	}

	b := &Board{
		grid:  world.NewGrid[Cell](rows, cols),
		mines: mines,
		state: InProgress,
	}

	placed := 0
	for _, p := range positions {
		cell := b.grid.At(p)
		if cell == nil {
			return nil, fmt.Errorf("%w: mine %v outside %dx%d board", ErrInvalidConfiguration, p, rows, cols)
		}
		if !cell.IsMine {
			cell.IsMine = true
			placed++
		}
	}
	if placed != mines {
		return nil, fmt.Errorf("%w: placer produced %d distinct mines, want %d", ErrInvalidConfiguration, placed, mines)
	}

	b.grid.ForEachCell(func(row, col int, cell *Cell) {
		if cell.IsMine {
			return
		}
		for _, n := range b.grid.Neighbors(world.Pos{Row: row, Col: col}) {
			if b.grid.At(n).IsMine {
				cell.AdjacentMines++
			}
		}
	})

	return b, nil
}

// Rows returns the number of rows
func (b *Board) Rows() int { return b.grid.Rows() }

// Cols returns the number of columns
func (b *Board) Cols() int { return b.grid.Cols() }

// MineCount returns the number of mines on the board
func (b *Board) MineCount() int { return b.mines }

// State returns the current lifecycle state
func (b *Board) State() State { return b.state }

// Cell returns a copy of the cell at row, col
func (b *Board) Cell(row, col int) (Cell, bool) {
	cell := b.grid.GetCell(row, col)
	if cell == nil {
		return Cell{}, false
	}
	return *cell, true
}

// Contains reports whether row, col lies on the board
func (b *Board) Contains(row, col int) bool {
	return b.grid.IsValidPosition(row, col)
}

// Center returns the middle cell, rounding down on even dimensions
func (b *Board) Center() world.Pos {
	return b.grid.Center()
}

// Clamp moves p onto the nearest cell of the board
func (b *Board) Clamp(p world.Pos) world.Pos {
	return b.grid.Clamp(p)
}

// RevealedCount returns the number of revealed cells, mines included after disclosure
func (b *Board) RevealedCount() int {
	count := 0
	b.grid.ForEachCell(func(_, _ int, cell *Cell) {
		if cell.IsRevealed {
			count++
		}
	})
	return count
}

// SafeRemaining returns how many non-mine cells are still concealed
func (b *Board) SafeRemaining() int {
	return b.grid.Size() - b.mines - b.revealedSafe
}

// ForEachCell calls fn with a copy of every cell in row-major order
func (b *Board) ForEachCell(fn func(row, col int, cell Cell)) {
	b.grid.ForEachCell(func(row, col int, cell *Cell) {
		fn(row, col, *cell)
	})
}

// Neighbors returns the in-bounds positions adjacent to row, col
func (b *Board) Neighbors(row, col int) []world.Pos {
	return b.grid.Neighbors(world.Pos{Row: row, Col: col})
}

// Reveal uncovers the cell at row, col. Revealing a zero cell floods outward
// through its 8-connected zero region and the numbered cells bordering it.
func (b *Board) Reveal(row, col int) (RevealOutcome, error) {
	if !b.grid.IsValidPosition(row, col) {
		return RevealOutcome{Result: ResultUnchanged, State: b.state},
			fmt.Errorf("%w: (%d,%d) on a %dx%d board", ErrOutOfBounds, row, col, b.Rows(), b.Cols())
	}

	target := b.grid.GetCell(row, col)
	if b.state.IsTerminal() || target.IsRevealed {
		return RevealOutcome{Result: ResultUnchanged, State: b.state}, nil
	}

	origin := world.Pos{Row: row, Col: col}
	if target.IsMine {
		target.IsRevealed = true
		changed := []world.Pos{origin}
		b.state = Lost
		changed = b.disclose(changed)
		return RevealOutcome{Result: ResultDetonated, State: b.state, Changed: changed}, nil
	}

	changed := b.flood(origin)

	if b.SafeRemaining() == 0 {
		b.state = Won
		changed = b.disclose(changed)
		return RevealOutcome{Result: ResultCleared, State: b.state, Changed: changed}, nil
	}
	return RevealOutcome{Result: ResultContinued, State: b.state, Changed: changed}, nil
}

// flood reveals origin and, while zero cells are found, their neighbours.
// Cells are marked revealed before they are pushed so none is queued twice.
func (b *Board) flood(origin world.Pos) []world.Pos {
	var changed []world.Pos
	work := stack.New[world.Pos]()

	b.grid.At(origin).IsRevealed = true
	b.revealedSafe++
	changed = append(changed, origin)
	work.Push(origin)

	for work.Size() > 0 {
		p := work.Pop()
		if b.grid.At(p).AdjacentMines != 0 {
			continue
		}
		for _, n := range b.grid.Neighbors(p) {
			cell := b.grid.At(n)
			if cell.IsRevealed || cell.IsMine {
				continue
			}
			cell.IsRevealed = true
			b.revealedSafe++
			changed = append(changed, n)
			work.Push(n)
		}
	}
	return changed
}

// disclose reveals every remaining cell once the game is over
func (b *Board) disclose(changed []world.Pos) []world.Pos {
	b.grid.ForEachCell(func(row, col int, cell *Cell) {
		if cell.IsRevealed {
			return
		}
		cell.IsRevealed = true
		if !cell.IsMine {
			b.revealedSafe++
		}
		changed = append(changed, world.Pos{Row: row, Col: col})
	})
	return changed
}

// DangerLevel returns the fraction of mines in the 3x3 window centred on
// row, col, the cell itself included, clipped at the board edges.
func (b *Board) DangerLevel(row, col int) (float64, error) {
	if !b.grid.IsValidPosition(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) on a %dx%d board", ErrOutOfBounds, row, col, b.Rows(), b.Cols())
	}

	window := b.grid.Window(world.Pos{Row: row, Col: col})
	mines := 0
	for _, p := range window {
		if b.grid.At(p).IsMine {
			mines++
		}
	}
	return float64(mines) / float64(len(window)), nil
}

// Mines returns the positions of every mine in row-major order
func (b *Board) Mines() []world.Pos {
	positions := make([]world.Pos, 0, b.mines)
	b.grid.ForEachCell(func(row, col int, cell *Cell) {
		if cell.IsMine {
			positions = append(positions, world.Pos{Row: row, Col: col})
		}
	})
	return positions
}

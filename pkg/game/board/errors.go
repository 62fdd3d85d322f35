package board

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConfiguration is returned when dimensions or mine count are out of range
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	// ErrOutOfBounds is returned when a coordinate lies outside the board
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Validate checks that rows x cols with the given number of mines is a playable
// board: positive dimensions and at least one cell left without a mine.
func Validate(rows, cols, mines int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfiguration, rows, cols)
	}
	if cols > math.MaxInt/rows {
		return fmt.Errorf("%w: dimensions %dx%d overflow the cell count", ErrInvalidConfiguration, rows, cols)
	}
	if mines < 0 || mines >= rows*cols {
		return fmt.Errorf("%w: %d mines on a %dx%d board, want 0 <= mines < %d",
			ErrInvalidConfiguration, mines, rows, cols, rows*cols)
	}
	return nil
}

// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/heatmap"
	"minesweeper/pkg/game/state"
)

const boardDumpFilename = "board.txt"

// cellSymbol returns the single-character symbol for a cell.
// If revealedOnly is true, concealed cells return '#'; otherwise they show their content.
func cellSymbol(cell board.Cell, revealedOnly bool) rune {
	if revealedOnly && !cell.IsRevealed {
		return '#'
	}
	switch {
	case cell.IsMine:
		return '*'
	case cell.AdjacentMines == 0:
		return '.'
	default:
		return rune('0' + cell.AdjacentMines)
	}
}

// tierSymbol returns the heat map tier as a digit 0-3
func tierSymbol(t heatmap.Tier) rune {
	return rune('0' + int(t))
}

// writeBoardGrid writes the board to w with the cursor marked as '@' when showCursor is set.
func writeBoardGrid(w io.Writer, g *state.Game, revealedOnly, showCursor bool) {
	b := g.Board
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if showCursor && row == g.Cursor.Row && col == g.Cursor.Col {
				fmt.Fprint(w, "@")
				continue
			}
			cell, _ := b.Cell(row, col)
			fmt.Fprintf(w, "%c", cellSymbol(cell, revealedOnly))
		}
		fmt.Fprintln(w)
	}
}

// DumpBoard writes a full debug dump: metadata, legend, the player's view,
// the solution and the heat map tiers.
func DumpBoard(w io.Writer, g *state.Game) error {
	if g.Board == nil {
		return fmt.Errorf("no board")
	}
	b := g.Board

	fmt.Fprintln(w, "=== BOARD DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", g.SessionID)
	fmt.Fprintf(w, "difficulty: %s\n", g.Difficulty.Name)
	fmt.Fprintf(w, "rows: %d\n", b.Rows())
	fmt.Fprintf(w, "cols: %d\n", b.Cols())
	fmt.Fprintf(w, "mines: %d\n", b.MineCount())
	fmt.Fprintf(w, "state: %s\n", b.State())
	fmt.Fprintf(w, "revealed: %d\n", b.RevealedCount())
	fmt.Fprintf(w, "safe_remaining: %d\n", b.SafeRemaining())
	fmt.Fprintf(w, "cursor: %d,%d\n", g.Cursor.Row, g.Cursor.Col)
	fmt.Fprintf(w, "coordinate_system: row,col (0-based)\n")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "# = concealed  . = no adjacent mines  1-8 = adjacent mines  * = mine  @ = cursor")
	fmt.Fprintln(w, "heat map: 0 = safe  1 = up to 1/4  2 = up to 1/2  3 = above 1/2")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Board (player view) ---")
	writeBoardGrid(w, g, true, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Board (solution) ---")
	writeBoardGrid(w, g, false, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Heat map (all cells) ---")
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			fmt.Fprintf(w, "%c", tierSymbol(g.Danger(row, col)))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Mines ---")
	for _, p := range b.Mines() {
		fmt.Fprintf(w, "  row: %d col: %d\n", p.Row, p.Col)
	}
	return nil
}

// DumpBoardToFile writes DumpBoard output to board.txt in the working directory
// and returns its absolute path.
func DumpBoardToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(boardDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpBoard(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}

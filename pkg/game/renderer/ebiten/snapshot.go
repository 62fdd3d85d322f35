package ebiten

import (
	"slices"

	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/heatmap"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// RenderFrame captures a snapshot of g for the next Draw call
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	if g == nil || g.Board == nil {
		e.snapshot.valid = false
		return
	}

	b := g.Board
	var tiers map[world.Pos]heatmap.Tier
	if g.HeatMap {
		tiers = heatmap.Overlay(b)
	}

	cells := make([]cellSnapshot, 0, b.Rows()*b.Cols())
	b.ForEachCell(func(row, col int, cell board.Cell) {
		cells = append(cells, cellSnapshot{
			revealed: cell.IsRevealed,
			mine:     cell.IsMine,
			adjacent: cell.AdjacentMines,
			tier:     tiers[world.Pos{Row: row, Col: col}],
		})
	})

	e.snapshot = renderSnapshot{
		valid:    true,
		rows:     b.Rows(),
		cols:     b.Cols(),
		cells:    cells,
		cursor:   g.Cursor,
		heatMap:  g.HeatMap,
		state:    b.State(),
		status:   renderer.StatusLine(g),
		keyHelp:  renderer.KeyHelp(),
		messages: slices.Clone(g.Messages),
	}
}

// currentSnapshot returns a copy of the snapshot safe to use without the lock.
// The cell slice is replaced, never mutated, so sharing it is fine.
func (e *EbitenRenderer) currentSnapshot() renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	snap := e.snapshot
	snap.messages = slices.Clone(e.snapshot.messages)
	return snap
}

func (s *renderSnapshot) cell(row, col int) cellSnapshot {
	return s.cells[row*s.cols+col]
}

// Package heatmap classifies danger levels into display tiers.
package heatmap

import (
	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/board"
)

// Tier is a coarse danger band
type Tier int

const (
	TierSafe   Tier = iota // no mines nearby
	TierLow                // up to a quarter
	TierMedium             // up to half
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierSafe:
		return "safe"
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	default:
		return "high"
	}
}

// Classify maps a danger ratio in [0,1] to its tier
func Classify(ratio float64) Tier {
	switch {
	case ratio <= 0:
		return TierSafe
	case ratio <= 0.25:
		return TierLow
	case ratio <= 0.5:
		return TierMedium
	default:
		return TierHigh
	}
}

// Overlay returns the tier of every concealed cell. Revealed cells keep their normal look.
func Overlay(b *board.Board) map[world.Pos]Tier {
	tiers := make(map[world.Pos]Tier)
	b.ForEachCell(func(row, col int, cell board.Cell) {
		if cell.IsRevealed {
			return
		}
		// in bounds by construction
		ratio, _ := b.DangerLevel(row, col)
		tiers[world.Pos{Row: row, Col: col}] = Classify(ratio)
	})
	return tiers
}

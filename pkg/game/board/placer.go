package board

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"minesweeper/pkg/engine/world"
)

// MinePlacer chooses where the mines of a new board go
type MinePlacer interface {
	// Place returns exactly mines distinct in-bounds positions
	Place(rows, cols, mines int) ([]world.Pos, error)
}

// RandomPlacer samples mine positions uniformly without replacement
type RandomPlacer struct {
	rng *rand.Rand
}

// NewRandomPlacer creates a placer whose layouts are fully determined by seed
func NewRandomPlacer(seed uint64) *RandomPlacer {
	return &RandomPlacer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewEntropyPlacer creates a placer seeded from the runtime's random source
func NewEntropyPlacer() *RandomPlacer {
	return &RandomPlacer{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Place picks mines cells with a partial Fisher-Yates shuffle over every index
func (p *RandomPlacer) Place(rows, cols, mines int) ([]world.Pos, error) {
	if err := Validate(rows, cols, mines); err != nil {
		return nil, err
	}

	total := rows * cols
	candidates := make([]int, total)
	for i := range candidates {
		candidates[i] = i
	}

	positions := make([]world.Pos, 0, mines)
	k := total
	for range mines {
		i := p.rng.IntN(k)
		index := candidates[i]
		k--
		candidates[i] = candidates[k]
		positions = append(positions, world.Pos{Row: index / cols, Col: index % cols})
	}
	return positions, nil
}

// FixedPlacer places mines at a predetermined layout
type FixedPlacer struct {
	positions []world.Pos
}

// NewFixedPlacer creates a placer that always returns the given positions
func NewFixedPlacer(positions ...world.Pos) *FixedPlacer {
	return &FixedPlacer{positions: slices.Clone(positions)}
}

// Place returns the fixed layout after checking it fits the requested board
func (p *FixedPlacer) Place(rows, cols, mines int) ([]world.Pos, error) {
	if err := Validate(rows, cols, mines); err != nil {
		return nil, err
	}
	if len(p.positions) != mines {
		return nil, fmt.Errorf("%w: layout has %d mines, want %d", ErrInvalidConfiguration, len(p.positions), mines)
	}

	seen := mapset.New[world.Pos]()
	for _, pos := range p.positions {
		if pos.Row < 0 || pos.Row >= rows || pos.Col < 0 || pos.Col >= cols {
			return nil, fmt.Errorf("%w: mine %v outside %dx%d board", ErrInvalidConfiguration, pos, rows, cols)
		}
		if seen.Has(pos) {
			return nil, fmt.Errorf("%w: mine %v placed twice", ErrInvalidConfiguration, pos)
		}
		seen.Put(pos)
	}
	return slices.Clone(p.positions), nil
}

package board

import (
	"errors"
	"math"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"minesweeper/pkg/engine/world"
)

// newFixed builds a board with mines at the given positions
func newFixed(t *testing.T, rows, cols int, mines ...world.Pos) *Board {
	t.Helper()
	b, err := New(rows, cols, len(mines), WithPlacer(NewFixedPlacer(mines...)))
	if err != nil {
		t.Fatalf("New(%d, %d, %d) error = %v", rows, cols, len(mines), err)
	}
	return b
}

func revealedSet(b *Board) mapset.Set[world.Pos] {
	set := mapset.New[world.Pos]()
	b.ForEachCell(func(row, col int, cell Cell) {
		if cell.IsRevealed {
			set.Put(world.Pos{Row: row, Col: col})
		}
	})
	return set
}

func TestNew_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name              string
		rows, cols, mines int
	}{
		{"zero rows", 0, 5, 1},
		{"zero cols", 5, 0, 1},
		{"negative rows", -1, 5, 1},
		{"negative mines", 3, 3, -1},
		{"all mines", 3, 3, 9},
		{"too many mines", 2, 2, 5},
		{"area overflows int", math.MaxInt/2 + 1, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.rows, tt.cols, tt.mines, WithPlacer(NewRandomPlacer(1)))
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("New(%d, %d, %d) error = %v, want ErrInvalidConfiguration", tt.rows, tt.cols, tt.mines, err)
			}
			if b != nil {
				t.Errorf("New(%d, %d, %d) returned a board alongside the error", tt.rows, tt.cols, tt.mines)
			}
		})
	}
}

func TestNew_MineCountAndAdjacency(t *testing.T) {
	sizes := []struct{ rows, cols, mines int }{
		{10, 10, 10},
		{16, 16, 40},
		{16, 30, 99},
		{5, 7, 34},
		{1, 8, 3},
	}
	for seed := uint64(1); seed <= 5; seed++ {
		for _, s := range sizes {
			b, err := New(s.rows, s.cols, s.mines, WithPlacer(NewRandomPlacer(seed)))
			if err != nil {
				t.Fatalf("New(%d, %d, %d) error = %v", s.rows, s.cols, s.mines, err)
			}

			mines := 0
			b.ForEachCell(func(row, col int, cell Cell) {
				if cell.IsRevealed {
					t.Errorf("cell (%d,%d) revealed on a new board", row, col)
				}
				if cell.IsMine {
					mines++
					return
				}
				want := 0
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						if dr == 0 && dc == 0 {
							continue
						}
						if n, ok := b.Cell(row+dr, col+dc); ok && n.IsMine {
							want++
						}
					}
				}
				if cell.AdjacentMines != want {
					t.Errorf("AdjacentMines at (%d,%d) = %d, want %d", row, col, cell.AdjacentMines, want)
				}
			})
			if mines != s.mines {
				t.Errorf("seed %d %dx%d: %d mines, want %d", seed, s.rows, s.cols, mines, s.mines)
			}
			if b.State() != InProgress {
				t.Errorf("State() = %v, want %v", b.State(), InProgress)
			}
		}
	}
}

func TestReveal_OutOfBounds(t *testing.T) {
	b := newFixed(t, 3, 3, world.Pos{Row: 2, Col: 2})
	for _, p := range []world.Pos{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 3, Col: 3}} {
		out, err := b.Reveal(p.Row, p.Col)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Reveal(%v) error = %v, want ErrOutOfBounds", p, err)
		}
		if len(out.Changed) != 0 {
			t.Errorf("Reveal(%v) changed %v", p, out.Changed)
		}
	}
	if got := b.RevealedCount(); got != 0 {
		t.Errorf("RevealedCount() = %d after out-of-bounds reveals, want 0", got)
	}
}

func TestReveal_MineLosesAndDiscloses(t *testing.T) {
	b := newFixed(t, 3, 3, world.Pos{Row: 1, Col: 1})
	out, err := b.Reveal(1, 1)
	if err != nil {
		t.Fatalf("Reveal(1,1) error = %v", err)
	}
	if out.Result != ResultDetonated || out.State != Lost || b.State() != Lost {
		t.Errorf("Reveal on mine = %v/%v, state %v, want detonated/lost", out.Result, out.State, b.State())
	}
	if out.Changed[0] != (world.Pos{Row: 1, Col: 1}) {
		t.Errorf("Changed[0] = %v, want the detonated mine", out.Changed[0])
	}
	if len(out.Changed) != 9 {
		t.Errorf("len(Changed) = %d, want 9", len(out.Changed))
	}
	if got := b.RevealedCount(); got != 9 {
		t.Errorf("RevealedCount() = %d, want 9", got)
	}
}

func TestReveal_CornerScenario(t *testing.T) {
	// 3x3 with a single mine in the bottom-right corner
	b := newFixed(t, 3, 3, world.Pos{Row: 2, Col: 2})

	wantCounts := [3][3]int{
		{0, 0, 0},
		{0, 1, 1},
		{0, 1, 0},
	}
	for r := range 3 {
		for c := range 3 {
			cell, _ := b.Cell(r, c)
			if cell.IsMine {
				continue
			}
			if cell.AdjacentMines != wantCounts[r][c] {
				t.Errorf("AdjacentMines at (%d,%d) = %d, want %d", r, c, cell.AdjacentMines, wantCounts[r][c])
			}
		}
	}

	out, err := b.Reveal(0, 0)
	if err != nil {
		t.Fatalf("Reveal(0,0) error = %v", err)
	}
	if out.Result != ResultCleared || b.State() != Won {
		t.Errorf("Reveal(0,0) = %v, state %v, want cleared/won", out.Result, b.State())
	}
	if len(out.Changed) != 9 {
		t.Errorf("len(Changed) = %d, want 8 flooded + 1 disclosed", len(out.Changed))
	}
	if last := out.Changed[len(out.Changed)-1]; last != (world.Pos{Row: 2, Col: 2}) {
		t.Errorf("last changed = %v, want the disclosed mine at (2,2)", last)
	}
	if cell, _ := b.Cell(2, 2); !cell.IsRevealed {
		t.Error("mine at (2,2) not disclosed after win")
	}
}

func TestReveal_CornerScenarioMineFirst(t *testing.T) {
	b := newFixed(t, 3, 3, world.Pos{Row: 2, Col: 2})
	out, _ := b.Reveal(2, 2)
	if out.State != Lost {
		t.Fatalf("Reveal(2,2) state = %v, want lost", out.State)
	}
	if got := b.RevealedCount(); got != 9 {
		t.Errorf("RevealedCount() = %d, want 9", got)
	}
}

func TestReveal_NumberedCellDoesNotFlood(t *testing.T) {
	b := newFixed(t, 3, 3, world.Pos{Row: 2, Col: 2})
	out, err := b.Reveal(1, 1)
	if err != nil {
		t.Fatalf("Reveal(1,1) error = %v", err)
	}
	if out.Result != ResultContinued {
		t.Errorf("Result = %v, want continued", out.Result)
	}
	if len(out.Changed) != 1 || b.RevealedCount() != 1 {
		t.Errorf("numbered reveal changed %v, revealed %d, want exactly one cell", out.Changed, b.RevealedCount())
	}
	if got := b.SafeRemaining(); got != 7 {
		t.Errorf("SafeRemaining() = %d, want 7", got)
	}
}

func TestReveal_FloodStopsAtNumberedBorder(t *testing.T) {
	// Column 3 is a wall of mines; the zero region is columns 0-1, column 2 its border.
	mines := []world.Pos{
		{Row: 0, Col: 3}, {Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 3},
	}
	b := newFixed(t, 4, 5, mines...)

	out, err := b.Reveal(0, 0)
	if err != nil {
		t.Fatalf("Reveal(0,0) error = %v", err)
	}
	if out.State != InProgress {
		t.Fatalf("State = %v, want in progress", out.State)
	}

	revealed := revealedSet(b)
	for r := range 4 {
		for c := range 5 {
			p := world.Pos{Row: r, Col: c}
			want := c <= 2
			if revealed.Has(p) != want {
				t.Errorf("revealed(%v) = %v, want %v", p, revealed.Has(p), want)
			}
		}
	}
	if revealed.Size() != len(out.Changed) {
		t.Errorf("len(Changed) = %d, revealed %d", len(out.Changed), revealed.Size())
	}
	for _, p := range out.Changed {
		if cell, _ := b.Cell(p.Row, p.Col); cell.IsMine {
			t.Errorf("flood revealed mine at %v", p)
		}
	}
}

func TestReveal_ChangedHasNoDuplicates(t *testing.T) {
	b, err := New(20, 20, 15, WithPlacer(NewRandomPlacer(7)))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	for r := range 20 {
		for c := range 20 {
			out, _ := b.Reveal(r, c)
			seen := mapset.New[world.Pos]()
			for _, p := range out.Changed {
				if seen.Has(p) {
					t.Fatalf("Reveal(%d,%d) lists %v twice", r, c, p)
				}
				seen.Put(p)
			}
			if b.State().IsTerminal() {
				return
			}
		}
	}
}

func TestReveal_Monotonic(t *testing.T) {
	b, err := New(12, 12, 20, WithPlacer(NewRandomPlacer(3)))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	prev := revealedSet(b)
	for i := range 144 {
		r, c := (i*7)%12, (i*5)%12
		_, _ = b.Reveal(r, c)
		cur := revealedSet(b)
		prev.Each(func(p world.Pos) {
			if !cur.Has(p) {
				t.Errorf("cell %v concealed again after Reveal(%d,%d)", p, r, c)
			}
		})
		prev = cur
	}
}

func TestReveal_Idempotent(t *testing.T) {
	b := newFixed(t, 4, 4, world.Pos{Row: 3, Col: 3}, world.Pos{Row: 0, Col: 3})
	if _, err := b.Reveal(1, 2); err != nil {
		t.Fatalf("Reveal error = %v", err)
	}
	before := b.RevealedCount()
	out, err := b.Reveal(1, 2)
	if err != nil {
		t.Fatalf("second Reveal error = %v", err)
	}
	if out.Result != ResultUnchanged || len(out.Changed) != 0 {
		t.Errorf("second Reveal = %v with %d changes, want unchanged", out.Result, len(out.Changed))
	}
	if got := b.RevealedCount(); got != before {
		t.Errorf("RevealedCount() = %d, want %d", got, before)
	}
}

func TestReveal_TerminalIsNoOp(t *testing.T) {
	b := newFixed(t, 2, 2, world.Pos{Row: 0, Col: 0})
	if out, _ := b.Reveal(0, 0); out.State != Lost {
		t.Fatalf("State = %v, want lost", out.State)
	}
	out, err := b.Reveal(1, 1)
	if err != nil {
		t.Fatalf("Reveal after loss error = %v", err)
	}
	if out.Result != ResultUnchanged || out.State != Lost {
		t.Errorf("Reveal after loss = %v/%v, want unchanged/lost", out.Result, out.State)
	}
}

func TestReveal_LastSafeCellWins(t *testing.T) {
	b := newFixed(t, 1, 3, world.Pos{Row: 0, Col: 1})
	out, _ := b.Reveal(0, 0)
	if out.Result != ResultContinued || b.SafeRemaining() != 1 {
		t.Fatalf("first Reveal = %v, safe remaining %d", out.Result, b.SafeRemaining())
	}
	out, _ = b.Reveal(0, 2)
	if out.Result != ResultCleared || out.State != Won {
		t.Errorf("last safe Reveal = %v/%v, want cleared/won", out.Result, out.State)
	}
	if len(out.Changed) != 2 {
		t.Errorf("Changed = %v, want the cell plus the disclosed mine", out.Changed)
	}
	if cell, _ := b.Cell(0, 1); !cell.IsRevealed {
		t.Error("mine not disclosed after win")
	}
}

func TestReveal_SingleCellNoMines(t *testing.T) {
	b, err := New(1, 1, 0)
	if err != nil {
		t.Fatalf("New(1, 1, 0) error = %v", err)
	}
	out, err := b.Reveal(0, 0)
	if err != nil {
		t.Fatalf("Reveal(0,0) error = %v", err)
	}
	if out.Result != ResultCleared || b.State() != Won {
		t.Errorf("Reveal(0,0) = %v, state %v, want cleared/won", out.Result, b.State())
	}
	if len(out.Changed) != 1 {
		t.Errorf("Changed = %v, want [(0,0)]", out.Changed)
	}
}

func TestDangerLevel(t *testing.T) {
	b := newFixed(t, 4, 4, world.Pos{Row: 0, Col: 0}, world.Pos{Row: 2, Col: 2})
	tests := []struct {
		row, col int
		want     float64
	}{
		{0, 0, 1.0 / 4},
		{0, 1, 1.0 / 6},
		{1, 1, 2.0 / 9},
		{3, 3, 1.0 / 4},
		{3, 0, 0},
		{2, 3, 1.0 / 6},
	}
	for _, tt := range tests {
		got, err := b.DangerLevel(tt.row, tt.col)
		if err != nil {
			t.Fatalf("DangerLevel(%d,%d) error = %v", tt.row, tt.col, err)
		}
		if got != tt.want {
			t.Errorf("DangerLevel(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestDangerLevel_CornerQuarter(t *testing.T) {
	b := newFixed(t, 2, 2, world.Pos{Row: 1, Col: 1})
	got, err := b.DangerLevel(0, 0)
	if err != nil || got != 0.25 {
		t.Errorf("DangerLevel(0,0) = %v, %v, want 0.25", got, err)
	}
}

func TestDangerLevel_ReadOnlyAndValidAfterGameOver(t *testing.T) {
	b := newFixed(t, 3, 3, world.Pos{Row: 2, Col: 2})
	_, _ = b.Reveal(2, 2)
	got, err := b.DangerLevel(1, 1)
	if err != nil || got != 1.0/9 {
		t.Errorf("DangerLevel(1,1) after loss = %v, %v, want 1/9", got, err)
	}
	if _, err := b.DangerLevel(3, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("DangerLevel(3,0) error = %v, want ErrOutOfBounds", err)
	}
}

func TestNew_DeterministicWithSeed(t *testing.T) {
	a, _ := New(9, 9, 10, WithPlacer(NewRandomPlacer(42)))
	b, _ := New(9, 9, 10, WithPlacer(NewRandomPlacer(42)))
	am, bm := a.Mines(), b.Mines()
	for i := range am {
		if am[i] != bm[i] {
			t.Fatalf("mine %d = %v vs %v with the same seed", i, am[i], bm[i])
		}
	}
}

func TestState_IsTerminal(t *testing.T) {
	if InProgress.IsTerminal() {
		t.Error("InProgress.IsTerminal() = true")
	}
	if !Won.IsTerminal() || !Lost.IsTerminal() {
		t.Error("Won/Lost must be terminal")
	}
}

func TestValidate_AreaOverflow(t *testing.T) {
	tests := []struct {
		name              string
		rows, cols, mines int
		wantErr           bool
	}{
		{"square overflow", math.MaxInt/2 + 1, math.MaxInt/2 + 1, 0, true},
		{"wrapping to a small area", math.MaxInt/4 + 1, 8, 1, true},
		{"max rows single column", math.MaxInt, 1, 0, false},
		{"exact fit", math.MaxInt / 2, 2, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.rows, tt.cols, tt.mines)
			if tt.wantErr != errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("Validate(%d, %d, %d) = %v, wantErr %v", tt.rows, tt.cols, tt.mines, err, tt.wantErr)
			}
		})
	}
}

func TestReveal_MillionCellFloodWins(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates a 1000x1000 board")
	}
	b, err := New(1000, 1000, 0, WithPlacer(NewRandomPlacer(1)))
	if err != nil {
		t.Fatalf("New(1000, 1000, 0) error = %v", err)
	}
	out, err := b.Reveal(500, 500)
	if err != nil {
		t.Fatalf("Reveal error = %v", err)
	}
	if out.Result != ResultCleared || b.State() != Won {
		t.Errorf("Result = %v, State = %v, want cleared and Won", out.Result, b.State())
	}
	if len(out.Changed) != 1_000_000 {
		t.Errorf("len(Changed) = %d, want 1000000", len(out.Changed))
	}
	if b.SafeRemaining() != 0 {
		t.Errorf("SafeRemaining() = %d, want 0", b.SafeRemaining())
	}
}

func TestCenterAndClamp(t *testing.T) {
	b := newFixed(t, 4, 7, world.Pos{Row: 0, Col: 0})
	if got, want := b.Center(), (world.Pos{Row: 2, Col: 3}); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
	tests := []struct {
		in, want world.Pos
	}{
		{world.Pos{Row: -1, Col: 3}, world.Pos{Row: 0, Col: 3}},
		{world.Pos{Row: 4, Col: 7}, world.Pos{Row: 3, Col: 6}},
		{world.Pos{Row: 2, Col: -9}, world.Pos{Row: 2, Col: 0}},
		{world.Pos{Row: 1, Col: 5}, world.Pos{Row: 1, Col: 5}},
	}
	for _, tt := range tests {
		if got := b.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

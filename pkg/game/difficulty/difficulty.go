// Package difficulty defines the board presets and custom board parsing.
package difficulty

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"minesweeper/pkg/game/board"
)

// ErrInvalidCustom is returned when user supplied custom settings cannot be used
var ErrInvalidCustom = errors.New("invalid custom settings")

// MaxDimension caps custom rows and columns so a typo cannot allocate a huge board
const MaxDimension = 1000

// Difficulty is a named board configuration
type Difficulty struct {
	Name  string
	Rows  int
	Cols  int
	Mines int
}

var (
	Easy   = Difficulty{Name: "Easy", Rows: 10, Cols: 10, Mines: 10}
	Medium = Difficulty{Name: "Medium", Rows: 16, Cols: 16, Mines: 40}
	Hard   = Difficulty{Name: "Hard", Rows: 16, Cols: 30, Mines: 99}
)

// CustomName is the name given to user-defined boards
const CustomName = "Custom"

// All returns the presets in menu order
func All() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Lookup finds a preset by name, ignoring case
func Lookup(name string) (Difficulty, bool) {
	for _, d := range All() {
		if strings.EqualFold(d.Name, strings.TrimSpace(name)) {
			return d, true
		}
	}
	return Difficulty{}, false
}

// IsCustom reports whether name refers to a custom board
func IsCustom(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), CustomName)
}

// Custom builds a custom difficulty from numeric values
func Custom(rows, cols, mines int) (Difficulty, error) {
	d := Difficulty{Name: CustomName, Rows: rows, Cols: cols, Mines: mines}
	if err := d.Validate(); err != nil {
		return Difficulty{}, err
	}
	return d, nil
}

// ParseCustom parses user-entered custom settings
func ParseCustom(rows, cols, mines string) (Difficulty, error) {
	r, err := parseField("rows", rows)
	if err != nil {
		return Difficulty{}, err
	}
	c, err := parseField("cols", cols)
	if err != nil {
		return Difficulty{}, err
	}
	m, err := parseField("mines", mines)
	if err != nil {
		return Difficulty{}, err
	}
	return Custom(r, c, m)
}

func parseField(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidCustom, name, value)
	}
	return n, nil
}

// Validate checks the configuration can build a board
func (d Difficulty) Validate() error {
	if d.Rows > MaxDimension || d.Cols > MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrInvalidCustom, d.Rows, d.Cols, MaxDimension)
	}
	if err := board.Validate(d.Rows, d.Cols, d.Mines); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCustom, err)
	}
	return nil
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", d.Name, d.Rows, d.Cols, d.Mines)
}

package renderer

import (
	"fmt"
	"strings"

	"minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/i18n"
	"minesweeper/pkg/game/state"
)

// Build information, set with -ldflags "-X minesweeper/pkg/game/renderer.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
)

// Glyphs shared by every front end
const (
	IconConcealed = "■"
	IconMine      = "●"
	IconEmpty     = "·"
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: board, status bar and messages
	RenderFrame(g *state.Game)

	// GetInput blocks until the player does something and returns it as an Intent
	GetInput() input.Intent

	// ShowMessage displays a message outside the game frame
	ShowMessage(msg string)
}

// Prompter is implemented by renderers that can ask the player for a line of text.
// ok is false when the player cancelled.
type Prompter interface {
	Prompt(label string) (answer string, ok bool)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// GetInput gets user input from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionQuit}
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// Prompt asks the current renderer for a line of text when it supports prompting
func Prompt(label string) (string, bool) {
	if p, ok := Current.(Prompter); ok {
		return p.Prompt(label)
	}
	return "", false
}

// CanPrompt reports whether the current renderer implements Prompter
func CanPrompt() bool {
	_, ok := Current.(Prompter)
	return ok
}

// CellGlyph returns the text shown for a cell: concealed block, mine, adjacency count or blank
func CellGlyph(cell board.Cell) string {
	switch {
	case !cell.IsRevealed:
		return IconConcealed
	case cell.IsMine:
		return IconMine
	case cell.AdjacentMines == 0:
		return IconEmpty
	default:
		return fmt.Sprint(cell.AdjacentMines)
	}
}

// StatusLine summarises the game for status bars
func StatusLine(g *state.Game) string {
	parts := []string{
		fmt.Sprintf("%s: %s", i18n.T("STATUS_DIFFICULTY"), g.Difficulty.Name),
		fmt.Sprintf("%dx%d", g.Board.Rows(), g.Board.Cols()),
		fmt.Sprintf("%s: %d", i18n.T("STATUS_MINES"), g.Board.MineCount()),
		fmt.Sprintf("%s: %d", i18n.T("STATUS_SAFE_LEFT"), g.Board.SafeRemaining()),
		g.StateLabel(),
	}
	return strings.Join(parts, " | ")
}

// helpActions orders the actions listed by KeyHelp
var helpActions = []input.Action{
	input.ActionMoveNorth,
	input.ActionMoveSouth,
	input.ActionMoveWest,
	input.ActionMoveEast,
	input.ActionReveal,
	input.ActionToggleHeatMap,
	input.ActionNewGame,
	input.ActionDifficulty,
	input.ActionOpenMenu,
	input.ActionDumpBoard,
	input.ActionQuit,
}

// KeyHelp lists the bound keys of every player action, e.g. "Reveal: enter/r/space"
func KeyHelp() string {
	byAction := input.GetBindingsByAction()
	parts := make([]string, 0, len(helpActions))
	for _, act := range helpActions {
		codes := byAction[act]
		if len(codes) == 0 {
			continue
		}
		parts = append(parts, input.ActionName(act)+": "+strings.Join(codes, "/"))
	}
	return strings.Join(parts, " | ")
}

// VersionText returns the version for title screens
func VersionText() string {
	if Commit != "unknown" && len(Commit) >= 7 {
		return fmt.Sprintf("%s (%s)", Version, Commit[:7])
	}
	return Version
}

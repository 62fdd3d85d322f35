// Package gameplay turns player intents into changes of the game session.
package gameplay

import (
	"errors"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/logging"
	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/devtools"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/i18n"
	gamemenu "minesweeper/pkg/game/menu"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// errPromptCancelled is returned when the player backs out of the custom prompt
var errPromptCancelled = errors.New("prompt cancelled")

var moves = map[engineinput.Action]world.Direction{
	engineinput.ActionMoveNorth: world.North,
	engineinput.ActionMoveSouth: world.South,
	engineinput.ActionMoveWest:  world.West,
	engineinput.ActionMoveEast:  world.East,
}

// ProcessIntent handles a high-level input intent from the tiered input system.
// It is the only place the game session is mutated.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if dir, ok := moves[intent.Action]; ok {
		g.MoveCursor(dir)
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionReveal:
		reveal(g, g.Cursor.Row, g.Cursor.Col)

	case engineinput.ActionRevealAt:
		if !g.SetCursor(intent.Row, intent.Col) {
			logging.Log.WithField("session", g.SessionID).Debugf("click outside board at %d,%d", intent.Row, intent.Col)
			return
		}
		reveal(g, intent.Row, intent.Col)

	case engineinput.ActionToggleHeatMap:
		g.ToggleHeatMap()

	case engineinput.ActionNewGame:
		restart(g, g.Difficulty)

	case engineinput.ActionDifficulty:
		SelectDifficulty(g, intent.Arg)

	case engineinput.ActionOpenMenu:
		chosen := gamemenu.RunGameMenu(g)
		if chosen.Action != engineinput.ActionOpenMenu {
			ProcessIntent(g, chosen)
		}

	case engineinput.ActionDumpBoard:
		path, err := devtools.DumpBoardToFile(g)
		if err != nil {
			logging.Log.WithError(err).Error("board dump failed")
			g.AddMessage(i18n.T("DUMP_FAILED", err.Error()))
			return
		}
		g.AddMessage(i18n.T("BOARD_DUMPED", path))

	case engineinput.ActionQuit:
		g.Quit = true

	default:
		g.AddMessage(i18n.T("UNKNOWN_COMMAND"))
	}
}

func reveal(g *state.Game, row, col int) {
	if _, err := g.RevealAt(row, col); err != nil {
		logging.Log.WithError(err).WithField("session", g.SessionID).Warn("reveal failed")
	}
}

func restart(g *state.Game, d difficulty.Difficulty) {
	if err := g.Restart(d); err != nil {
		g.AddMessage(i18n.T("INVALID_CUSTOM", err.Error()))
	}
}

// SelectDifficulty starts a new game with the named difficulty. For the custom
// difficulty the player is asked for rows, columns and mines when the renderer
// can prompt; otherwise the configured custom board is used. Invalid custom
// values leave the current game untouched.
func SelectDifficulty(g *state.Game, name string) {
	if difficulty.IsCustom(name) {
		d, err := customDifficulty(g)
		if errors.Is(err, errPromptCancelled) {
			return
		}
		if err != nil {
			logging.Log.WithError(err).WithField("session", g.SessionID).Warn("invalid custom settings")
			g.AddMessage(i18n.T("INVALID_CUSTOM", err.Error()))
			return
		}
		g.Custom = d
		restart(g, d)
		return
	}

	d, ok := difficulty.Lookup(name)
	if !ok {
		g.AddMessage(i18n.T("UNKNOWN_COMMAND"))
		return
	}
	restart(g, d)
}

// customDifficulty asks the player for custom board settings
func customDifficulty(g *state.Game) (difficulty.Difficulty, error) {
	if !renderer.CanPrompt() {
		if err := g.Custom.Validate(); err != nil {
			return difficulty.Difficulty{}, err
		}
		return difficulty.Custom(g.Custom.Rows, g.Custom.Cols, g.Custom.Mines)
	}

	var answers [3]string
	for i, key := range []string{"PROMPT_ROWS", "PROMPT_COLS", "PROMPT_MINES"} {
		answer, ok := renderer.Prompt(i18n.T(key))
		if !ok {
			return difficulty.Difficulty{}, errPromptCancelled
		}
		answers[i] = answer
	}
	return difficulty.ParseCustom(answers[0], answers[1], answers[2])
}

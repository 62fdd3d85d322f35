package state

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"minesweeper/pkg/engine/logging"
	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/heatmap"
	"minesweeper/pkg/game/i18n"
)

// Game represents one player's session: the current board plus everything
// the front ends need to present it
type Game struct {
	// SessionID identifies the current board in logs; it changes on every restart
	SessionID string

	Board *board.Board

	Difficulty difficulty.Difficulty

	// Custom is offered when the player picks the custom difficulty without entering values
	Custom difficulty.Difficulty

	Cursor world.Pos

	HeatMap bool

	Messages []string

	Quit bool

	newPlacer func() board.MinePlacer
}

// Option configures a Game
type Option func(*Game)

// WithPlacer makes every board of the session use p. A seeded RandomPlacer
// gives a reproducible sequence of layouts.
func WithPlacer(p board.MinePlacer) Option {
	return func(g *Game) {
		g.newPlacer = func() board.MinePlacer { return p }
	}
}

// WithCustom sets the fallback custom difficulty
func WithCustom(d difficulty.Difficulty) Option {
	return func(g *Game) {
		g.Custom = d
	}
}

// NewGame creates a game instance with a fresh board
func NewGame(d difficulty.Difficulty, opts ...Option) (*Game, error) {
	g := &Game{
		Messages:  make([]string, 0),
		Custom:    d,
		newPlacer: func() board.MinePlacer { return board.NewEntropyPlacer() },
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.Restart(d); err != nil {
		return nil, err
	}
	return g, nil
}

// Restart discards the current board and starts a new one with d.
// On error the current board is kept.
func (g *Game) Restart(d difficulty.Difficulty) error {
	b, err := board.New(d.Rows, d.Cols, d.Mines, board.WithPlacer(g.newPlacer()))
	if err != nil {
		logging.Log.WithFields(logrus.Fields{
			"difficulty": d.Name,
			"rows":       d.Rows,
			"cols":       d.Cols,
			"mines":      d.Mines,
		}).WithError(err).Warn("cannot start game")
		return err
	}

	g.Board = b
	g.Difficulty = d
	g.SessionID = uuid.NewString()
	g.Cursor = b.Center()
	g.ClearMessages()
	g.AddMessage(i18n.T("NEW_GAME", d.String()))

	g.logger().WithFields(logrus.Fields{
		"rows":  d.Rows,
		"cols":  d.Cols,
		"mines": d.Mines,
	}).Info("new game")
	return nil
}

func (g *Game) logger() *logrus.Entry {
	return logging.Log.WithFields(logrus.Fields{
		"session":    g.SessionID,
		"difficulty": g.Difficulty.Name,
	})
}

// RevealAt reveals a cell and reports the game result in the message log
func (g *Game) RevealAt(row, col int) (board.RevealOutcome, error) {
	out, err := g.Board.Reveal(row, col)
	if err != nil {
		g.logger().WithError(err).Debug("reveal rejected")
		return out, err
	}

	g.logger().WithFields(logrus.Fields{
		"row":     row,
		"col":     col,
		"result":  out.Result.String(),
		"changed": len(out.Changed),
	}).Debug("reveal")

	switch out.Result {
	case board.ResultDetonated:
		g.AddMessage(i18n.T("GAME_LOST"))
		g.AddMessage(i18n.T("GAME_OVER_HINT"))
		g.logger().WithField("at", world.Pos{Row: row, Col: col}.String()).Info("game lost")
	case board.ResultCleared:
		g.AddMessage(i18n.T("GAME_WON"))
		g.AddMessage(i18n.T("GAME_OVER_HINT"))
		g.logger().Info("game won")
	}
	return out, nil
}

// RevealCursor reveals the cell under the cursor
func (g *Game) RevealCursor() (board.RevealOutcome, error) {
	return g.RevealAt(g.Cursor.Row, g.Cursor.Col)
}

// MoveCursor moves the cursor one step, stopping at the board edge
func (g *Game) MoveCursor(dir world.Direction) {
	g.Cursor = g.Board.Clamp(g.Cursor.Step(dir))
}

// SetCursor places the cursor at row, col if it lies on the board
func (g *Game) SetCursor(row, col int) bool {
	if !g.Board.Contains(row, col) {
		return false
	}
	g.Cursor = world.Pos{Row: row, Col: col}
	return true
}

// ToggleHeatMap flips the danger overlay and returns its new state
func (g *Game) ToggleHeatMap() bool {
	g.HeatMap = !g.HeatMap
	if g.HeatMap {
		g.AddMessage(i18n.T("HEATMAP_ON"))
	} else {
		g.AddMessage(i18n.T("HEATMAP_OFF"))
	}
	return g.HeatMap
}

// Danger returns the heat map tier of a cell, TierSafe when off the board
func (g *Game) Danger(row, col int) heatmap.Tier {
	ratio, err := g.Board.DangerLevel(row, col)
	if err != nil {
		return heatmap.TierSafe
	}
	return heatmap.Classify(ratio)
}

// StateLabel returns the translated name of the board state
func (g *Game) StateLabel() string {
	switch g.Board.State() {
	case board.Won:
		return i18n.T("STATE_WON")
	case board.Lost:
		return i18n.T("STATE_LOST")
	default:
		return i18n.T("STATE_IN_PROGRESS")
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

package gameplay

import (
	"minesweeper/pkg/engine/logging"
	"minesweeper/pkg/game/i18n"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// Run is the game loop: draw the frame, wait for an intent, apply it, until the player quits.
func Run(g *state.Game) {
	logging.Log.WithField("session", g.SessionID).Info("game loop started")

	for !g.Quit {
		renderer.Clear()
		renderer.RenderFrame(g)
		ProcessIntent(g, renderer.GetInput())
	}

	logging.Log.WithField("session", g.SessionID).Info("game loop finished")
	renderer.ShowMessage(i18n.T("GOODBYE"))
}

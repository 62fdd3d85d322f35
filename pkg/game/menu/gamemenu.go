package menu

import (
	"strings"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/i18n"
	"minesweeper/pkg/game/state"
)

// GameMenuItem is one entry of the game menu; choosing it produces Intent.
type GameMenuItem struct {
	Label  string
	Help   string
	Intent engineinput.Intent
}

// GetLabel returns the display label for this menu item.
func (m *GameMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *GameMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *GameMenuItem) GetHelpText() string {
	return m.Help
}

// GameMenuHandler handles the difficulty / options menu.
type GameMenuHandler struct {
	chosen engineinput.Intent
}

// NewGameMenuHandler creates a new game menu handler.
func NewGameMenuHandler() *GameMenuHandler {
	return &GameMenuHandler{}
}

// GetTitle returns the menu title.
func (h *GameMenuHandler) GetTitle() string {
	return i18n.T("MENU_TITLE")
}

// GetInstructions returns the menu instructions.
func (h *GameMenuHandler) GetInstructions(selected MenuItem) string {
	return i18n.T("MENU_INSTRUCTIONS")
}

// OnSelect is called when an item is selected.
func (h *GameMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate records the item's intent and closes the menu.
func (h *GameMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	if gameItem, ok := item.(*GameMenuItem); ok {
		h.chosen = gameItem.Intent
		return true, ""
	}
	return false, ""
}

// OnExit is called when the menu is exited.
func (h *GameMenuHandler) OnExit() {}

// Chosen returns the intent picked by the player, ActionNone if the menu was closed
func (h *GameMenuHandler) Chosen() engineinput.Intent {
	return h.chosen
}

// GetMenuItems returns the menu items: presets, custom, heat map toggle and quit.
func (h *GameMenuHandler) GetMenuItems() []MenuItem {
	labels := map[string]string{
		difficulty.Easy.Name:   i18n.T("MENU_EASY"),
		difficulty.Medium.Name: i18n.T("MENU_MEDIUM"),
		difficulty.Hard.Name:   i18n.T("MENU_HARD"),
	}

	items := make([]MenuItem, 0, 6)
	for _, d := range difficulty.All() {
		items = append(items, &GameMenuItem{
			Label:  labels[d.Name],
			Help:   i18n.T("MENU_HELP_PRESET", d.Rows, d.Cols, d.Mines),
			Intent: engineinput.Intent{Action: engineinput.ActionDifficulty, Arg: strings.ToLower(d.Name)},
		})
	}
	items = append(items,
		&GameMenuItem{
			Label:  i18n.T("MENU_CUSTOM"),
			Help:   i18n.T("MENU_HELP_CUSTOM"),
			Intent: engineinput.Intent{Action: engineinput.ActionDifficulty, Arg: strings.ToLower(difficulty.CustomName)},
		},
		&GameMenuItem{
			Label:  i18n.T("MENU_HEATMAP"),
			Help:   i18n.T("MENU_HELP_HEATMAP"),
			Intent: engineinput.Intent{Action: engineinput.ActionToggleHeatMap},
		},
		&GameMenuItem{
			Label:  i18n.T("MENU_QUIT"),
			Intent: engineinput.Intent{Action: engineinput.ActionQuit},
		},
	)
	return items
}

// RunGameMenu shows the game menu and returns the intent the player chose
func RunGameMenu(g *state.Game) engineinput.Intent {
	handler := NewGameMenuHandler()
	RunMenu(g, handler.GetMenuItems(), handler)
	return handler.Chosen()
}

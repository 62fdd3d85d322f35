// Package menu provides a generic menu system for the game.
package menu

import (
	"fmt"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)

	// OnActivate is called when an item is activated (e.g., Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is exited.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
}

// MenuRenderer is an optional interface for renderers that can draw
// a menu overlay on top of the board.
type MenuRenderer interface {
	// RenderMenu draws the menu overlay with the given items, selected index, help text, and title.
	RenderMenu(g *state.Game, items []MenuItem, selected int, helpText string, title string)
	// ClearMenu hides any active menu overlay.
	ClearMenu()
}

// RunMenu runs a generic menu with the given items and handler.
func RunMenu(g *state.Game, items []MenuItem, handler MenuHandler) {
	selected := firstSelectable(items)
	helpText := ""
	if selected >= 0 {
		helpText = items[selected].GetHelpText()
	}

	closeMenu := func() {
		if mr, ok := renderer.Current.(MenuRenderer); ok {
			mr.ClearMenu()
		}
		handler.OnExit()
	}

	for {
		if mr, ok := renderer.Current.(MenuRenderer); ok {
			mr.RenderMenu(g, items, selected, helpText, handler.GetTitle())
		} else {
			renderMenuFallback(g, items, selected, helpText, handler)
		}

		intent := renderer.GetInput()

		switch intent.Action {
		case engineinput.ActionMoveNorth:
			if next := stepSelectable(items, selected, -1); next != selected {
				selected = next
				helpText = items[selected].GetHelpText()
				handler.OnSelect(items[selected], selected)
			}
		case engineinput.ActionMoveSouth:
			if next := stepSelectable(items, selected, 1); next != selected {
				selected = next
				helpText = items[selected].GetHelpText()
				handler.OnSelect(items[selected], selected)
			}
		case engineinput.ActionReveal:
			if selected >= 0 && selected < len(items) && items[selected].IsSelectable() {
				shouldClose, newHelpText := handler.OnActivate(items[selected], selected)
				if newHelpText != "" {
					helpText = newHelpText
				}
				if shouldClose {
					closeMenu()
					return
				}
			}
		case engineinput.ActionOpenMenu, engineinput.ActionQuit:
			closeMenu()
			return
		default:
			// Ignore other actions while in menu
		}
	}
}

// firstSelectable returns the index of the first selectable item, or -1
func firstSelectable(items []MenuItem) int {
	for i, item := range items {
		if item.IsSelectable() {
			return i
		}
	}
	return -1
}

// stepSelectable moves from selected in direction dir to the next selectable item, wrapping around
func stepSelectable(items []MenuItem, selected, dir int) int {
	n := len(items)
	if n == 0 || selected < 0 {
		return selected
	}
	for i := 1; i < n; i++ {
		idx := ((selected+dir*i)%n + n) % n
		if items[idx].IsSelectable() {
			return idx
		}
	}
	return selected
}

// renderMenuFallback redraws the frame and prints the menu below it.
// Used by renderers without a native overlay (the terminal).
func renderMenuFallback(g *state.Game, items []MenuItem, selected int, helpText string, handler MenuHandler) {
	renderer.Clear()
	renderer.RenderFrame(g)

	renderer.ShowMessage(fmt.Sprintf("=== %s === %s", handler.GetTitle(), renderer.VersionText()))

	var selectedItem MenuItem
	if selected >= 0 && selected < len(items) {
		selectedItem = items[selected]
	}
	if instructions := handler.GetInstructions(selectedItem); instructions != "" {
		renderer.ShowMessage(instructions)
	}

	for i, item := range items {
		prefix := "  "
		if i == selected {
			prefix = "> "
		}
		renderer.ShowMessage(prefix + item.GetLabel())
	}

	if helpText != "" {
		renderer.ShowMessage("")
		renderer.ShowMessage(helpText)
	}
}

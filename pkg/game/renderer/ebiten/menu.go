package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	gamemenu "minesweeper/pkg/game/menu"
	"minesweeper/pkg/game/state"
)

// RenderMenu implements gamemenu.MenuRenderer for Ebiten.
// It captures the current frame and marks the menu overlay as active.
func (e *EbitenRenderer) RenderMenu(g *state.Game, items []gamemenu.MenuItem, selected int, helpText string, title string) {
	// Keep the board underneath up to date
	e.RenderFrame(g)

	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.GetLabel()
	}

	e.menuMutex.Lock()
	defer e.menuMutex.Unlock()
	e.menu = menuSnapshot{
		active:   true,
		title:    title,
		labels:   labels,
		selected: selected,
		helpText: helpText,
	}
}

// ClearMenu hides the menu overlay.
func (e *EbitenRenderer) ClearMenu() {
	e.menuMutex.Lock()
	defer e.menuMutex.Unlock()
	e.menu = menuSnapshot{}
}

func (e *EbitenRenderer) menuActive() bool {
	e.menuMutex.RLock()
	defer e.menuMutex.RUnlock()
	return e.menu.active
}

// drawMenuOverlay draws a centred panel with the menu items and a highlight
// on the selected entry
func (e *EbitenRenderer) drawMenuOverlay(screen *ebiten.Image) {
	e.menuMutex.RLock()
	m := e.menu
	e.menuMutex.RUnlock()

	face := e.getUIFontFace()
	_, textHeight := text.Measure("Ag", face, 0)
	lineHeight := int(textHeight * 1.6)

	panelWidth := 0.0
	for _, s := range append([]string{m.title, m.helpText}, m.labels...) {
		w, _ := text.Measure(s, face, 0)
		panelWidth = max(panelWidth, w)
	}
	const padding = 24
	width := int(panelWidth) + padding*2
	height := lineHeight*(len(m.labels)+3) + padding*2

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := (screenWidth - width) / 2
	y := (screenHeight - height) / 2

	vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), float32(screenHeight), colorPanelBackground, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), colorMapBackground, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, colorSubtle, false)

	row := y + padding
	drawText(screen, m.title, face, x+padding, row, colorText)
	row += lineHeight * 2

	for i, label := range m.labels {
		if i == m.selected {
			vector.DrawFilledRect(screen, float32(x+padding/2), float32(row-lineHeight/6),
				float32(width-padding), float32(lineHeight), colorMenuHighlight, false)
			drawText(screen, label, face, x+padding, row, colorBackground)
		} else {
			drawText(screen, label, face, x+padding, row, colorText)
		}
		row += lineHeight
	}

	if m.helpText != "" {
		drawText(screen, m.helpText, face, x+padding, row+lineHeight/2, colorSubtle)
	}
}

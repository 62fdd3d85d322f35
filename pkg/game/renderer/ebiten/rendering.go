package ebiten

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/i18n"
	"minesweeper/pkg/game/renderer"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := e.currentSnapshot()
	if !snap.valid || e.monoFontSource == nil {
		// Can't draw without a snapshot or fonts
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	uiFontSize := e.getUIFontSize()
	lineHeight := int(uiFontSize * 1.4)

	headerHeight := lineHeight*3 + 10
	footerHeight := lineHeight*(maxMessageLines+1) + 10

	l := computeLayout(screenWidth, screenHeight, headerHeight, footerHeight, snap.rows, snap.cols, e.tileSize)
	e.lastLayout = l

	e.drawHeader(screen, &snap, lineHeight)

	vector.DrawFilledRect(screen, float32(l.x-mapMargin), float32(l.y-mapMargin),
		float32(l.width()+mapMargin*2), float32(l.height()+mapMargin*2),
		colorMapBackground, false)

	e.drawBoard(screen, &snap, l)
	e.drawMessages(screen, &snap, l.y+l.height()+mapMargin+10, lineHeight)

	if e.menuActive() {
		e.drawMenuOverlay(screen)
	}
}

// drawHeader draws the title, the status line and the key bindings
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap *renderSnapshot, lineHeight int) {
	face := e.getUIFontFace()
	drawText(screen, i18n.T("TITLE")+"  "+renderer.VersionText(), face, mapMargin, 8, colorSubtle)

	statusColor := colorText
	switch snap.state {
	case board.Won:
		statusColor = colorWon
	case board.Lost:
		statusColor = colorLost
	}
	drawText(screen, snap.status, face, mapMargin, 8+lineHeight, statusColor)
	drawText(screen, snap.keyHelp, face, mapMargin, 8+lineHeight*2, colorSubtle)
}

// drawBoard draws every cell with a 1px gap between tiles
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, snap *renderSnapshot, l boardLayout) {
	gap := float32(1)
	if l.tile < 6 {
		gap = 0
	}
	size := float32(l.tile) - gap

	var face *text.GoTextFace
	if l.tile >= minTileSize {
		face = e.getTileFontFace(l.tile)
	}

	for row := 0; row < snap.rows; row++ {
		for col := 0; col < snap.cols; col++ {
			cell := snap.cell(row, col)
			x, y := l.cellOrigin(row, col)

			vector.DrawFilledRect(screen, x, y, size, size, cellBackground(cell, snap.heatMap), false)

			if face == nil {
				continue
			}
			glyph, clr := cellForeground(cell)
			if glyph != "" {
				drawCentered(screen, glyph, face, x+size/2, y+size/2, clr)
			}
		}
	}

	if l.tile > 0 {
		x, y := l.cellOrigin(snap.cursor.Row, snap.cursor.Col)
		stroke := max(float32(l.tile)/12, 1)
		vector.StrokeRect(screen, x, y, size, size, stroke, colorCursor, false)
	}
}

// cellBackground picks the tile color: heat map tint for concealed cells when
// the overlay is on, red for revealed mines
func cellBackground(cell cellSnapshot, heatMap bool) color.Color {
	switch {
	case cell.revealed && cell.mine:
		return colorMineBackground
	case cell.revealed:
		return colorRevealed
	case heatMap:
		return tierColors[cell.tier]
	default:
		return colorConcealed
	}
}

// cellForeground returns the glyph drawn on a tile and its color
func cellForeground(cell cellSnapshot) (string, color.Color) {
	switch {
	case !cell.revealed:
		return "", nil
	case cell.mine:
		return renderer.IconMine, colorMine
	case cell.adjacent > 0:
		return strconv.Itoa(cell.adjacent), numberColors[min(cell.adjacent, len(numberColors)-1)]
	default:
		return "", nil
	}
}

// drawMessages draws the most recent messages below the board
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot, top, lineHeight int) {
	face := e.getUIFontFace()
	messages := snap.messages
	if len(messages) > maxMessageLines {
		messages = messages[len(messages)-maxMessageLines:]
	}
	for i, msg := range messages {
		clr := colorSubtle
		if i == len(messages)-1 {
			clr = colorText
		}
		drawText(screen, msg, face, mapMargin, top+i*lineHeight, clr)
	}
}

// drawText draws s with its top-left corner at x, y
func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// drawCentered draws s centred on cx, cy
func drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, cx, cy float32, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx), float64(cy))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

package ebiten

// boardLayout places the board on screen
type boardLayout struct {
	x, y       int // top-left pixel of cell (0,0)
	tile       int
	rows, cols int
}

// computeLayout fits a rows x cols board into the area below headerHeight,
// keeping footerHeight free. Tiles never exceed preferred and never drop
// below one pixel.
func computeLayout(screenWidth, screenHeight, headerHeight, footerHeight, rows, cols, preferred int) boardLayout {
	availableWidth := screenWidth - mapMargin*2
	availableHeight := screenHeight - headerHeight - footerHeight - mapMargin*2

	tile := preferred
	if cols > 0 {
		tile = min(tile, availableWidth/cols)
	}
	if rows > 0 {
		tile = min(tile, availableHeight/rows)
	}
	tile = max(tile, 1)

	return boardLayout{
		x:    (screenWidth - cols*tile) / 2,
		y:    headerHeight + mapMargin,
		tile: tile,
		rows: rows,
		cols: cols,
	}
}

// cellAt maps a pixel position to the cell under it
func (l boardLayout) cellAt(px, py int) (row, col int, ok bool) {
	if l.tile <= 0 || px < l.x || py < l.y {
		return 0, 0, false
	}
	row = (py - l.y) / l.tile
	col = (px - l.x) / l.tile
	if row >= l.rows || col >= l.cols {
		return 0, 0, false
	}
	return row, col, true
}

// cellOrigin returns the top-left pixel of a cell
func (l boardLayout) cellOrigin(row, col int) (float32, float32) {
	return float32(l.x + col*l.tile), float32(l.y + row*l.tile)
}

func (l boardLayout) width() int  { return l.cols * l.tile }
func (l boardLayout) height() int { return l.rows * l.tile }

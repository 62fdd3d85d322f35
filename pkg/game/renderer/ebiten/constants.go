package ebiten

import (
	"image/color"

	"minesweeper/pkg/game/heatmap"
)

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for board area
	colorConcealed       = color.RGBA{70, 75, 105, 255}   // Unrevealed cell
	colorRevealed        = color.RGBA{150, 155, 175, 255} // Revealed safe cell
	colorMineBackground  = color.RGBA{120, 30, 30, 255}   // Revealed mine
	colorMine            = color.RGBA{20, 20, 20, 255}
	colorCursor          = color.RGBA{255, 255, 0, 255}
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle          = color.RGBA{120, 130, 180, 255}
	colorWon             = color.RGBA{100, 255, 150, 255}
	colorLost            = color.RGBA{255, 120, 120, 255}
	colorPanelBackground = color.RGBA{30, 30, 50, 230} // Semi-transparent dark
	colorMenuHighlight   = color.RGBA{180, 150, 250, 255}
)

// Heat map tints for concealed cells
var tierColors = map[heatmap.Tier]color.RGBA{
	heatmap.TierSafe:   {40, 110, 60, 255},
	heatmap.TierLow:    {90, 150, 70, 255},
	heatmap.TierMedium: {190, 160, 40, 255},
	heatmap.TierHigh:   {190, 50, 50, 255},
}

// Classic minesweeper digit colors, indexed by adjacent mine count
var numberColors = [9]color.RGBA{
	{0, 0, 0, 0},
	{25, 60, 220, 255},
	{20, 120, 30, 255},
	{200, 30, 30, 255},
	{20, 20, 120, 255},
	{120, 20, 20, 255},
	{20, 120, 120, 255},
	{10, 10, 10, 255},
	{90, 90, 90, 255},
}

// Tile size constraints
const (
	defaultTileSize = 32
	minTileSize     = 12
	maxTileSize     = 96
	tileSizeStep    = 4
	baseFontSize    = 16.0 // Font size at a 24px tile
)

const (
	keyRepeatInitialDelay = 400 // milliseconds
	keyRepeatInterval     = 80  // milliseconds
)

// Layout margins in pixels
const (
	mapMargin       = 20
	maxMessageLines = 3
)

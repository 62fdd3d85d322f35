// Package ebiten provides an Ebiten-based 2D graphical renderer for the minesweeper board.
package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/heatmap"
)

// cellSnapshot is the drawable state of one cell
type cellSnapshot struct {
	revealed bool
	mine     bool
	adjacent int
	tier     heatmap.Tier
}

// renderSnapshot holds a consistent snapshot of game state for rendering.
// The game loop writes it in RenderFrame, Draw only reads it.
type renderSnapshot struct {
	valid    bool
	rows     int
	cols     int
	cells    []cellSnapshot // row-major
	cursor   world.Pos
	heatMap  bool
	state    board.State
	status   string
	keyHelp  string
	messages []string
}

// menuSnapshot is the menu overlay as last passed to RenderMenu
type menuSnapshot struct {
	active   bool
	title    string
	labels   []string
	selected int
	helpText string
}

// keyRepeatInfo tracks the repeat state for a key
type keyRepeatInfo struct {
	firstPressed int64 // milliseconds
	lastRepeat   int64 // milliseconds
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Preferred tile size, adjustable with +/-; large boards shrink below it to fit
	tileSize int

	monoFontSource *text.GoTextFaceSource

	// Cached font faces, recreated when their size changes
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedTileFace     *text.GoTextFace
	cachedUIFace       *text.GoTextFace

	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	menu      menuSnapshot
	menuMutex sync.RWMutex

	// Board placement from the last Draw, used to map mouse clicks to cells.
	// Update and Draw run on the same goroutine.
	lastLayout boardLayout

	// Input channel for communication between Ebiten and the game loop
	inputChan chan engineinput.Intent

	// Closed by Stop; unblocks GetInput and ends the Ebiten loop
	done     chan struct{}
	stopOnce sync.Once

	windowOpenedLogged bool

	keyRepeatState map[string]keyRepeatInfo
}

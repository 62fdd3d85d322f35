package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/logging"
	"minesweeper/pkg/game/i18n"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:    1024,
		windowHeight:   768,
		tileSize:       defaultTileSize,
		inputChan:      make(chan engineinput.Intent, 16),
		done:           make(chan struct{}),
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Init loads fonts and configures the window. Rendering starts with Run.
func (e *EbitenRenderer) Init() {
	src, err := loadFontSource()
	if err != nil {
		logging.Log.WithError(err).Error("cannot load font, board text will not be drawn")
	}
	e.monoFontSource = src

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(i18n.T("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear is a no-op; every Draw starts from an empty screen
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until the window produces an intent. Once the renderer is
// stopped it keeps returning quit so the game loop can wind down.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.done:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// ShowMessage appends a message below the board
func (e *EbitenRenderer) ShowMessage(msg string) {
	logging.Log.Info(msg)

	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.snapshot.messages = append(e.snapshot.messages, msg)
}

// Run starts the Ebiten game loop. It must be called from the main goroutine
// and returns when the window closes or Stop is called.
func (e *EbitenRenderer) Run() error {
	return ebiten.RunGame(e)
}

// Stop ends the Ebiten loop and releases a game loop waiting for input
func (e *EbitenRenderer) Stop() {
	e.stopOnce.Do(func() {
		close(e.done)
	})
}

func (e *EbitenRenderer) stopped() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

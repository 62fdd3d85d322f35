package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/logging"
)

// keyCode ties an Ebiten key to the device code understood by the input bindings
type keyCode struct {
	key    ebiten.Key
	code   string
	repeat bool // held keys repeat after keyRepeatInitialDelay
}

var keyCodes = []keyCode{
	{ebiten.KeyArrowUp, "arrow_up", true},
	{ebiten.KeyArrowDown, "arrow_down", true},
	{ebiten.KeyArrowLeft, "arrow_left", true},
	{ebiten.KeyArrowRight, "arrow_right", true},
	{ebiten.KeyW, "w", true},
	{ebiten.KeyS, "s", true},
	{ebiten.KeyA, "a", true},
	{ebiten.KeyD, "d", true},
	{ebiten.KeyK, "k", true},
	{ebiten.KeyJ, "j", true},
	{ebiten.KeyH, "h", true},
	{ebiten.KeyL, "l", true},
	{ebiten.KeySpace, "space", false},
	{ebiten.KeyEnter, "enter", false},
	{ebiten.KeyNumpadEnter, "enter", false},
	{ebiten.KeyR, "r", false},
	{ebiten.KeyV, "v", false},
	{ebiten.KeyN, "n", false},
	{ebiten.KeyDigit1, "1", false},
	{ebiten.KeyDigit2, "2", false},
	{ebiten.KeyDigit3, "3", false},
	{ebiten.KeyDigit4, "4", false},
	{ebiten.KeyM, "m", false},
	{ebiten.KeyEscape, "escape", false},
	{ebiten.KeyF8, "f8", false},
	{ebiten.KeyQ, "q", false},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.stopped() {
		return ebiten.Termination
	}

	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		logging.Log.Infof("window opened (%dx%d)", w, h)
	}

	e.handleZoom()

	if intent := e.checkMouseInput(); intent.Action != engineinput.ActionNone {
		e.send(intent)
	} else if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		e.send(intent)
	}
	return nil
}

// send queues an intent for the game loop without blocking the frame
func (e *EbitenRenderer) send(intent engineinput.Intent) {
	select {
	case e.inputChan <- intent:
	default:
		logging.Log.WithField("action", engineinput.ActionName(intent.Action)).Debug("input dropped, game loop busy")
	}
}

// handleZoom handles =/- for tile size adjustment and 0 to reset
func (e *EbitenRenderer) handleZoom() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		e.setTileSize(min(e.tileSize+tileSizeStep, maxTileSize))
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		e.setTileSize(max(e.tileSize-tileSizeStep, minTileSize))
	case inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0):
		e.setTileSize(defaultTileSize)
	}
}

func (e *EbitenRenderer) setTileSize(size int) {
	if size != e.tileSize {
		e.tileSize = size
		e.invalidateFontCache()
	}
}

// checkMouseInput turns a left click on the board into a reveal of that cell
func (e *EbitenRenderer) checkMouseInput() engineinput.Intent {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}
	if e.menuActive() {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}

	x, y := ebiten.CursorPosition()
	row, col, ok := e.lastLayout.cellAt(x, y)
	if !ok {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}
	return engineinput.RevealAt(row, col)
}

// checkInput runs the first pressed key through the tiered input layers
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, kc := range keyCodes {
		var pressed bool
		if kc.repeat {
			pressed = e.shouldRepeatKey(ebiten.IsKeyPressed(kc.key), kc.code)
		} else {
			pressed = inpututil.IsKeyJustPressed(kc.key)
		}
		if pressed {
			return engineinput.FromCode(engineinput.DeviceKeyboard, kc.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// shouldRepeatKey reports whether a key fires this frame: on first press,
// then every keyRepeatInterval once keyRepeatInitialDelay has passed
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string) bool {
	return e.repeatAt(time.Now().UnixMilli(), pressed, code)
}

func (e *EbitenRenderer) repeatAt(now int64, pressed bool, code string) bool {
	state, exists := e.keyRepeatState[code]
	if !pressed {
		delete(e.keyRepeatState, code)
		return false
	}
	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}

package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Board
	ActionReveal        // reveal the cell under the cursor
	ActionRevealAt      // reveal Intent.Row, Intent.Col (mouse)
	ActionToggleHeatMap // show or hide the danger overlay
	ActionNewGame       // restart with the current difficulty
	ActionDifficulty    // restart with the difficulty named in Intent.Arg

	// Meta / UI
	ActionOpenMenu
	ActionDumpBoard
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
	Row    int
	Col    int
	Arg    string
}

// RevealAt builds the intent for revealing a specific cell
func RevealAt(row, col int) Intent {
	return Intent{Action: ActionRevealAt, Row: row, Col: col}
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "space").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten reports just-pressed keys and the terminal delivers one key per read,
// so each RawInput is already debounced; the type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(raw.Code),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, Vim, WASD)
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"w":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"a":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,
	"d":           ActionMoveEast,

	// Reveal
	"space": ActionReveal,
	"enter": ActionReveal,
	"r":     ActionReveal,

	"v":       ActionToggleHeatMap,
	"heatmap": ActionToggleHeatMap,
	"n":       ActionNewGame,

	// Difficulty shortcuts, see difficultyArgs
	"1": ActionDifficulty,
	"2": ActionDifficulty,
	"3": ActionDifficulty,
	"4": ActionDifficulty,

	// Menu
	"m":      ActionOpenMenu,
	"menu":   ActionOpenMenu,
	"escape": ActionOpenMenu,

	"f8":   ActionDumpBoard,
	"dump": ActionDumpBoard,

	// Quit
	"q":      ActionQuit,
	"quit":   ActionQuit,
	"ctrl_c": ActionQuit,
}

// difficultyArgs names the difficulty selected by each ActionDifficulty code
var difficultyArgs = map[string]string{
	"1": "easy",
	"2": "medium",
	"3": "hard",
	"4": "custom",
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	act, ok := bindings[ev.Code]
	if !ok {
		return Intent{Action: ActionNone}
	}
	intent := Intent{Action: act}
	if act == ActionDifficulty {
		intent.Arg = difficultyArgs[ev.Code]
	}
	return intent
}

// FromCode runs a device code through every input layer
func FromCode(device Device, code string) Intent {
	raw := RawInput{Device: device, Code: code, Timestamp: time.Now()}
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionReveal:
		return "Reveal"
	case ActionRevealAt:
		return "Reveal At"
	case ActionToggleHeatMap:
		return "Heat Map"
	case ActionNewGame:
		return "New Game"
	case ActionDifficulty:
		return "Difficulty"
	case ActionOpenMenu:
		return "Open Menu"
	case ActionDumpBoard:
		return "Dump Board"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

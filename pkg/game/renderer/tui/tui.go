package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/logging"
	"minesweeper/pkg/engine/terminal"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/heatmap"
	"minesweeper/pkg/game/i18n"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// KeyReader supplies key presses and typed lines
type KeyReader interface {
	ReadKey() (string, error)
	ReadLine(prompt string) (string, error)
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	keys KeyReader
	out  io.Writer

	colorTitle     color.Style
	colorConcealed color.Style
	colorMine      color.Style
	colorSubtle    color.Style
	colorAction    color.Style
	colorNumbers   [9]color.Style
	heatColors     map[heatmap.Tier]color.Style
}

// New creates a new TUI renderer reading keys from keys and drawing to out
func New(keys KeyReader, out io.Writer) *TUIRenderer {
	return &TUIRenderer{keys: keys, out: out}
}

// NewStdio creates a TUI renderer on the process terminal
func NewStdio() *TUIRenderer {
	return New(input.NewTerminal(os.Stdin, os.Stdout), os.Stdout)
}

// Init initializes the TUI renderer colours
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorConcealed = color.Style{color.FgGray}
	t.colorMine = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}

	t.colorNumbers = [9]color.Style{
		{color.FgDefault},
		{color.FgBlue, color.OpBold},
		{color.FgGreen, color.OpBold},
		{color.FgRed, color.OpBold},
		{color.FgMagenta, color.OpBold},
		{color.FgYellow, color.OpBold},
		{color.FgCyan, color.OpBold},
		{color.FgLightWhite, color.OpBold},
		{color.FgGray, color.OpBold},
	}

	// Heat map tiers recolour concealed cells only
	t.heatColors = map[heatmap.Tier]color.Style{
		heatmap.TierSafe:   {color.FgBlack, color.BgGreen},
		heatmap.TierLow:    {color.FgBlack, color.BgLightGreen},
		heatmap.TierMedium: {color.FgBlack, color.BgYellow},
		heatmap.TierHigh:   {color.FgBlack, color.BgRed},
	}
}

// Clear clears the terminal screen. Piped sessions are left alone.
func (t *TUIRenderer) Clear() {
	if !terminal.IsInteractive() {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	if err := c.Run(); err != nil {
		logging.Log.WithError(err).Debug("clear screen")
	}
}

// GetInput reads one key from the terminal and returns a high-level Intent.
// A closed stdin quits the game.
func (t *TUIRenderer) GetInput() input.Intent {
	code, err := t.keys.ReadKey()
	if err != nil {
		logging.Log.WithError(err).Info("terminal input closed")
		return input.Intent{Action: input.ActionQuit}
	}
	return input.FromCode(input.DeviceTerminal, code)
}

// Prompt asks for a line of text
func (t *TUIRenderer) Prompt(label string) (string, bool) {
	answer, err := t.keys.ReadLine(t.colorAction.Sprint(label) + ": ")
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(answer), true
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	fmt.Fprintln(t.out, t.colorTitle.Sprint(i18n.T("TITLE")))
	fmt.Fprintln(t.out)

	t.printBoard(g)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(renderer.StatusLine(g)))
	fmt.Fprintln(t.out, t.colorAction.Sprint(renderer.KeyHelp()))

	t.printMessagesPane(g)
}

// renderCell returns the coloured text of one cell
func (t *TUIRenderer) renderCell(g *state.Game, row, col int, cell board.Cell) string {
	glyph := renderer.CellGlyph(cell)

	var style color.Style
	switch {
	case !cell.IsRevealed && g.HeatMap:
		style = t.heatColors[g.Danger(row, col)]
	case !cell.IsRevealed:
		style = t.colorConcealed
	case cell.IsMine:
		style = t.colorMine
	default:
		style = t.colorNumbers[cell.AdjacentMines]
	}

	if g.Cursor.Row == row && g.Cursor.Col == col {
		cursor := make(color.Style, 0, len(style)+1)
		cursor = append(cursor, style...)
		cursor = append(cursor, color.OpReverse)
		style = cursor
	}
	return style.Sprint(glyph)
}

// printBoard renders the grid with row and column indices
func (t *TUIRenderer) printBoard(g *state.Game) {
	b := g.Board
	indent := centerIndent(terminal.GetWidth(), 4+b.Cols()*2)

	header := make([]string, b.Cols())
	for col := range header {
		header[col] = fmt.Sprint(col % 10)
	}
	fmt.Fprintf(t.out, "%s    %s\n", indent, t.colorSubtle.Sprint(strings.Join(header, " ")))

	for row := 0; row < b.Rows(); row++ {
		cells := make([]string, b.Cols())
		for col := range cells {
			cell, _ := b.Cell(row, col)
			cells[col] = t.renderCell(g, row, col, cell)
		}
		fmt.Fprintf(t.out, "%s%s  %s\n", indent, t.colorSubtle.Sprintf("%2d", row), strings.Join(cells, " "))
	}
}

func centerIndent(termWidth, contentWidth int) string {
	pad := (termWidth - contentWidth) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad)
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.GetWidth()

	label := " " + i18n.T("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+i18n.T("NO_MESSAGES")))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

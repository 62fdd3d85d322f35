package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal reads keys and lines from a terminal, switching it to raw mode
// for single-key reads when it is interactive.
type Terminal struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

// NewTerminal creates a terminal reader on in, echoing typed lines to out
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out, reader: bufio.NewReader(in)}
}

func (t *Terminal) isInteractive() bool {
	return term.IsTerminal(int(t.in.Fd()))
}

// ReadKey waits for one key press and returns its code
func (t *Terminal) ReadKey() (string, error) {
	if t.isInteractive() {
		fd := int(t.in.Fd())
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return "", fmt.Errorf("raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)
	}
	return DecodeKey(t.reader)
}

// ReadLine reads a line of text after printing prompt, with basic backspace editing
func (t *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	if !t.isInteractive() {
		line, err := t.reader.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fd := int(t.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	var line []byte
	for {
		key, err := DecodeKey(t.reader)
		if err != nil {
			return "", err
		}
		switch key {
		case "enter":
			fmt.Fprint(t.out, "\r\n")
			return string(line), nil
		case "ctrl_c", "escape":
			fmt.Fprint(t.out, "\r\n")
			return "", io.EOF
		case "backspace":
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(t.out, "\b \b")
			}
		case "space":
			line = append(line, ' ')
			fmt.Fprint(t.out, " ")
		default:
			// arrows and function keys are ignored while typing
			if len(key) == 1 {
				line = append(line, key[0])
				fmt.Fprint(t.out, key)
			}
		}
	}
}

// DecodeKey reads one key from r. Escape sequences for arrow keys (CSI and SS3)
// and F8 are decoded; a lone ESC with nothing buffered behind it is "escape".
func DecodeKey(r *bufio.Reader) (string, error) {
	b, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch b {
	case 0x1b:
		if r.Buffered() == 0 {
			return "escape", nil
		}
		return decodeEscape(r)
	case '\r', '\n':
		return "enter", nil
	case ' ':
		return "space", nil
	case 3:
		return "ctrl_c", nil
	case 127, 8:
		return "backspace", nil
	}

	if b >= 32 && b < 127 {
		return string(b), nil
	}
	return "", nil
}

func decodeEscape(r *bufio.Reader) (string, error) {
	b2, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	// F8 is ESC [ 1 9 ~
	seq := []byte{b3}
	for b3 >= '0' && b3 <= '9' && r.Buffered() > 0 {
		b3, err = r.ReadByte()
		if err != nil {
			return "", err
		}
		seq = append(seq, b3)
	}
	if string(seq) == "19~" {
		return "f8", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}

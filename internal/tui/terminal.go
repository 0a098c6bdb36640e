package tui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Key identifies a decoded keypress.
type Key int

const (
	KeyRune Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyCtrlC
	KeyCtrlN
	KeyCtrlS
)

// Keypress is one decoded key event. Rune is set for KeyRune.
type Keypress struct {
	Key  Key
	Rune rune
}

// Terminal owns the raw-mode terminal for the duration of a screen.
// All output goes through it so lines end with \r\n while raw mode is on.
type Terminal struct {
	in       *os.File
	out      *os.File
	oldState *term.State
}

// OpenTerminal switches stdin to raw mode.
func OpenTerminal() (*Terminal, error) {
	in := os.Stdin
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	return &Terminal{in: in, out: os.Stdout, oldState: oldState}, nil
}

// Close restores the terminal state.
func (t *Terminal) Close() error {
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.oldState)
	t.oldState = nil
	return err
}

// Size returns the terminal width and height.
func (t *Terminal) Size() (int, int) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 80, 24
	}
	return w, h
}

// ReadKey blocks for the next keypress and decodes arrow escape sequences.
func (t *Terminal) ReadKey() (Keypress, error) {
	buf := make([]byte, 4)
	n, err := t.in.Read(buf)
	if err != nil {
		return Keypress{}, err
	}
	if n == 0 {
		return Keypress{Key: KeyEscape}, nil
	}

	switch buf[0] {
	case 0x1b:
		if n >= 3 && buf[1] == '[' {
			switch buf[2] {
			case 'A':
				return Keypress{Key: KeyUp}, nil
			case 'B':
				return Keypress{Key: KeyDown}, nil
			case 'C':
				return Keypress{Key: KeyRight}, nil
			case 'D':
				return Keypress{Key: KeyLeft}, nil
			}
		}
		return Keypress{Key: KeyEscape}, nil
	case '\r', '\n':
		return Keypress{Key: KeyEnter}, nil
	case 0x7f, 0x08:
		return Keypress{Key: KeyBackspace}, nil
	case 0x03:
		return Keypress{Key: KeyCtrlC}, nil
	case 0x0e:
		return Keypress{Key: KeyCtrlN}, nil
	case 0x13:
		return Keypress{Key: KeyCtrlS}, nil
	}
	return Keypress{Key: KeyRune, Rune: rune(buf[0])}, nil
}

// Clear wipes the screen and homes the cursor.
func (t *Terminal) Clear() {
	fmt.Fprint(t.out, "\x1b[2J\x1b[H")
}

// Print writes a block of text, fixing up newlines for raw mode.
func (t *Terminal) Print(text string) {
	fmt.Fprint(t.out, strings.ReplaceAll(text, "\n", "\r\n"))
}

// Println writes text followed by a newline.
func (t *Terminal) Println(text string) {
	t.Print(text + "\n")
}

// Printf formats and writes, fixing up newlines for raw mode.
func (t *Terminal) Printf(format string, args ...any) {
	t.Print(fmt.Sprintf(format, args...))
}

// ReadLine collects typed characters until enter, echoing as it goes.
// Returns false when cancelled with escape.
func (t *Terminal) ReadLine(prompt string) (string, bool) {
	t.Print(prompt)
	var line []rune
	for {
		key, err := t.ReadKey()
		if err != nil {
			return "", false
		}
		switch key.Key {
		case KeyEnter:
			t.Print("\n")
			return string(line), true
		case KeyEscape, KeyCtrlC:
			t.Print("\n")
			return "", false
		case KeyBackspace:
			if len(line) > 0 {
				line = line[:len(line)-1]
				t.Print("\b \b")
			}
		case KeyRune:
			if key.Rune >= 32 && key.Rune < 127 {
				line = append(line, key.Rune)
				t.Print(string(key.Rune))
			}
		}
	}
}

// Package editor implements the arcade's plain text editor: a linear
// character buffer with cursor arithmetic, pagination and file operations.
package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// MaxTextSize caps the buffer, matching the cabinet's fixed allocation.
	MaxTextSize = 4096
	// LinesPerPage and CharsPerLine shape the paginated view.
	LinesPerPage = 20
	CharsPerLine = 50

	DefaultFilename = "untitled.txt"
)

var (
	ErrBufferFull = errors.New("buffer full")
	ErrNoFilename = errors.New("no filename set")
)

// Buffer is an editable text buffer with a cursor and scroll offset.
type Buffer struct {
	text     []byte
	filename string
	cursor   int
	scroll   int
	modified bool
}

// New returns an empty buffer named untitled.txt.
func New() *Buffer {
	return &Buffer{
		text:     make([]byte, 0, MaxTextSize),
		filename: DefaultFilename,
	}
}

// Filename returns the current file name.
func (b *Buffer) Filename() string { return b.filename }

// SetFilename renames the buffer without touching the contents.
func (b *Buffer) SetFilename(name string) {
	if name == "" {
		name = DefaultFilename
	}
	b.filename = name
	b.modified = true
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.text) }

// Cursor returns the cursor position in [0, Len].
func (b *Buffer) Cursor() int { return b.cursor }

// Scroll returns the scroll offset.
func (b *Buffer) Scroll() int { return b.scroll }

// Modified reports whether the buffer has unsaved changes.
func (b *Buffer) Modified() bool { return b.modified }

// Text returns a copy of the buffer contents.
func (b *Buffer) Text() string { return string(b.text) }

// Insert writes s at the cursor and advances the cursor past it. Only
// printable ASCII and newlines are accepted; anything else is dropped.
func (b *Buffer) Insert(s string) error {
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\n' || (c >= 32 && c <= 126) {
			clean = append(clean, c)
		}
	}
	if len(b.text)+len(clean) > MaxTextSize {
		return ErrBufferFull
	}
	b.text = append(b.text[:b.cursor], append(append([]byte{}, clean...), b.text[b.cursor:]...)...)
	b.cursor += len(clean)
	b.modified = true
	return nil
}

// DeleteBack removes the character before the cursor, like backspace.
func (b *Buffer) DeleteBack() {
	if b.cursor == 0 {
		return
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
	b.modified = true
}

// MoveCursor shifts the cursor by delta, clamped to [0, Len].
func (b *Buffer) MoveCursor(delta int) {
	b.cursor += delta
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor > len(b.text) {
		b.cursor = len(b.text)
	}
}

// ScrollBy shifts the scroll offset by delta, clamped to [0, Len].
func (b *Buffer) ScrollBy(delta int) {
	b.scroll += delta
	if b.scroll < 0 {
		b.scroll = 0
	}
	if b.scroll > len(b.text) {
		b.scroll = len(b.text)
	}
}

// LineCount approximates the number of display lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.text)/CharsPerLine + 1
}

// View renders one page starting at the scroll offset: wrapped lines with a
// "|" cursor marker. The page holds at most LinesPerPage lines; a cursor
// outside the page is simply not drawn.
func (b *Buffer) View() []string {
	var lines []string
	var cur strings.Builder
	width := 0

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		width = 0
	}

	i := b.scroll
	for ; i < len(b.text) && len(lines) < LinesPerPage; i++ {
		if i == b.cursor {
			cur.WriteByte('|')
		}
		c := b.text[i]
		if c == '\n' {
			flush()
			continue
		}
		cur.WriteByte(c)
		width++
		if width >= CharsPerLine {
			flush()
		}
	}
	if i == len(b.text) && b.cursor >= len(b.text) {
		cur.WriteByte('|')
	}
	if cur.Len() > 0 && len(lines) < LinesPerPage {
		flush()
	}
	return lines
}

// Status renders the header line: name, dirty marker, position.
func (b *Buffer) Status() string {
	dirty := ""
	if b.modified {
		dirty = " *"
	}
	return fmt.Sprintf("%s%s | pos %d/%d | lines ~%d", b.filename, dirty, b.cursor, len(b.text), b.LineCount())
}

// Reset empties the buffer back to an unnamed, unmodified state.
func (b *Buffer) Reset() {
	b.text = b.text[:0]
	b.filename = DefaultFilename
	b.cursor = 0
	b.scroll = 0
	b.modified = false
}

// Save writes the buffer into dir and clears the modified flag.
func (b *Buffer) Save(dir string) error {
	if b.filename == "" {
		return ErrNoFilename
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating documents dir: %w", err)
	}
	path := filepath.Join(dir, b.filename)
	if err := os.WriteFile(path, b.text, 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", b.filename, err)
	}
	b.modified = false
	return nil
}

// Load replaces the buffer with the named file from dir, truncating to
// MaxTextSize when the file is larger than the buffer.
func (b *Buffer) Load(dir, name string) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("loading %s: %w", name, err)
	}
	if len(data) > MaxTextSize {
		data = data[:MaxTextSize]
	}
	b.text = append(b.text[:0], data...)
	b.filename = name
	b.cursor = len(b.text)
	b.scroll = 0
	b.modified = false
	return nil
}

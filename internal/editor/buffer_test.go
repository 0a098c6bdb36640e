package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInsertAndDelete(t *testing.T) {
	b := New()
	if err := b.Insert("hello"); err != nil {
		t.Fatal(err)
	}
	if b.Text() != "hello" || b.Cursor() != 5 {
		t.Errorf("text %q cursor %d, want hello/5", b.Text(), b.Cursor())
	}
	b.MoveCursor(-5)
	if err := b.Insert("ah "); err != nil {
		t.Fatal(err)
	}
	if b.Text() != "ah hello" {
		t.Errorf("text = %q, want %q", b.Text(), "ah hello")
	}
	b.DeleteBack()
	if b.Text() != "ahhello" || b.Cursor() != 2 {
		t.Errorf("text %q cursor %d after delete", b.Text(), b.Cursor())
	}
	if !b.Modified() {
		t.Error("buffer should be modified")
	}
}

func TestInsertFiltersNonPrintable(t *testing.T) {
	b := New()
	if err := b.Insert("a\x00b\tc\nd\x1b"); err != nil {
		t.Fatal(err)
	}
	if b.Text() != "abc\nd" {
		t.Errorf("text = %q, want %q", b.Text(), "abc\nd")
	}
}

func TestBufferFull(t *testing.T) {
	b := New()
	if err := b.Insert(strings.Repeat("x", MaxTextSize)); err != nil {
		t.Fatal(err)
	}
	if err := b.Insert("y"); err != ErrBufferFull {
		t.Errorf("overflow error = %v, want ErrBufferFull", err)
	}
	if b.Len() != MaxTextSize {
		t.Errorf("len = %d, want %d", b.Len(), MaxTextSize)
	}
}

func TestCursorClamping(t *testing.T) {
	b := New()
	b.Insert("abc")
	b.MoveCursor(-10)
	if b.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", b.Cursor())
	}
	b.MoveCursor(99)
	if b.Cursor() != 3 {
		t.Errorf("cursor = %d, want 3", b.Cursor())
	}
	b.ScrollBy(-5)
	if b.Scroll() != 0 {
		t.Errorf("scroll = %d, want 0", b.Scroll())
	}
}

func TestViewCursorMarker(t *testing.T) {
	b := New()
	b.Insert("one\ntwo")
	b.MoveCursor(-3)

	lines := b.View()
	if len(lines) != 2 {
		t.Fatalf("%d lines, want 2", len(lines))
	}
	if lines[0] != "one" {
		t.Errorf("line 0 = %q, want %q", lines[0], "one")
	}
	if lines[1] != "|two" {
		t.Errorf("line 1 = %q, want %q", lines[1], "|two")
	}
}

func TestViewWrapsLongLines(t *testing.T) {
	b := New()
	b.Insert(strings.Repeat("a", CharsPerLine+10))
	lines := b.View()
	if len(lines) != 2 {
		t.Fatalf("%d lines, want 2", len(lines))
	}
	if len(lines[0]) != CharsPerLine {
		t.Errorf("first line is %d chars, want %d", len(lines[0]), CharsPerLine)
	}
}

func TestViewPageLimit(t *testing.T) {
	b := New()
	b.Insert(strings.Repeat("line\n", LinesPerPage+10))
	b.MoveCursor(-b.Len())
	if got := len(b.View()); got > LinesPerPage {
		t.Errorf("view has %d lines, want at most %d", got, LinesPerPage)
	}
}

func TestViewFullPageCursorAtEnd(t *testing.T) {
	b := New()
	b.Insert(strings.Repeat("line\n", LinesPerPage+5))
	if got := len(b.View()); got != LinesPerPage {
		t.Errorf("view has %d lines, want exactly %d", got, LinesPerPage)
	}

	// A page that fills exactly must not gain an extra line for the
	// trailing cursor marker.
	b.Reset()
	b.Insert(strings.Repeat("a", LinesPerPage*CharsPerLine))
	if got := len(b.View()); got != LinesPerPage {
		t.Errorf("exactly full view has %d lines, want %d", got, LinesPerPage)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	b := New()
	b.SetFilename("notes.txt")
	b.Insert("remember the milk\n")

	if err := b.Save(dir); err != nil {
		t.Fatal(err)
	}
	if b.Modified() {
		t.Error("buffer should be clean after save")
	}

	loaded := New()
	if err := loaded.Load(dir, "notes.txt"); err != nil {
		t.Fatal(err)
	}
	if loaded.Text() != "remember the milk\n" {
		t.Errorf("loaded %q", loaded.Text())
	}
	if loaded.Filename() != "notes.txt" {
		t.Errorf("filename = %q", loaded.Filename())
	}
	if loaded.Modified() {
		t.Error("freshly loaded buffer should be clean")
	}
}

func TestLoadTruncatesOversizedFiles(t *testing.T) {
	dir := t.TempDir()
	big := strings.Repeat("z", MaxTextSize+100)
	if err := os.WriteFile(filepath.Join(dir, "big.txt"), []byte(big), 0o644); err != nil {
		t.Fatal(err)
	}
	b := New()
	if err := b.Load(dir, "big.txt"); err != nil {
		t.Fatal(err)
	}
	if b.Len() != MaxTextSize {
		t.Errorf("len = %d, want %d", b.Len(), MaxTextSize)
	}
}

func TestReset(t *testing.T) {
	b := New()
	b.SetFilename("old.txt")
	b.Insert("junk")
	b.Reset()
	if b.Len() != 0 || b.Cursor() != 0 || b.Modified() {
		t.Error("reset left state behind")
	}
	if b.Filename() != DefaultFilename {
		t.Errorf("filename = %q, want %q", b.Filename(), DefaultFilename)
	}
}

func TestStatusDirtyMarker(t *testing.T) {
	b := New()
	if strings.Contains(b.Status(), "*") {
		t.Error("clean buffer should not show the dirty marker")
	}
	b.Insert("x")
	if !strings.Contains(b.Status(), "*") {
		t.Error("modified buffer should show the dirty marker")
	}
}

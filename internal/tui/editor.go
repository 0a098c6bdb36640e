package tui

import (
	"os"

	"github.com/Flapjacck/pbat/internal/editor"
)

// RunEditor drives the plain text editor over the raw terminal. Ctrl-S
// saves, Ctrl-N starts a new file, Esc leaves.
func (a *App) RunEditor() error {
	return a.RunEditorFile("")
}

// RunEditorFile opens the editor on a named file from the documents
// directory, or on an empty buffer when name is blank.
func (a *App) RunEditorFile(name string) error {
	buf := editor.New()
	status := ""
	if name != "" {
		if err := buf.Load(a.Cfg.DocumentsDir, name); err != nil {
			buf.Reset()
			buf.SetFilename(name)
			status = "new file " + name
		}
	}

	for {
		a.drawEditor(buf, status)
		status = ""

		key, err := a.Term.ReadKey()
		if err != nil {
			return err
		}
		switch key.Key {
		case KeyEscape, KeyCtrlC:
			if buf.Modified() && !a.confirm("Discard unsaved changes?") {
				continue
			}
			return nil
		case KeyCtrlS:
			status = a.saveBuffer(buf)
		case KeyCtrlN:
			if buf.Modified() && !a.confirm("Discard unsaved changes?") {
				continue
			}
			buf.Reset()
			if name, ok := a.Term.ReadLine("Open file (blank for new): "); ok && name != "" {
				if err := buf.Load(a.Cfg.DocumentsDir, name); err != nil {
					buf.Reset()
					status = err.Error()
				}
			}
		case KeyLeft:
			buf.MoveCursor(-1)
		case KeyRight:
			buf.MoveCursor(1)
		case KeyUp:
			buf.MoveCursor(-editor.CharsPerLine)
		case KeyDown:
			buf.MoveCursor(editor.CharsPerLine)
		case KeyBackspace:
			buf.DeleteBack()
		case KeyEnter:
			if err := buf.Insert("\n"); err != nil {
				status = err.Error()
			}
		case KeyRune:
			if err := buf.Insert(string(key.Rune)); err != nil {
				status = err.Error()
			}
		}
	}
}

// saveBuffer prompts for a filename when the buffer is still untitled.
func (a *App) saveBuffer(buf *editor.Buffer) string {
	if buf.Filename() == editor.DefaultFilename {
		if name, ok := a.Term.ReadLine("Save as: "); ok && name != "" {
			buf.SetFilename(name)
		}
	}
	if err := buf.Save(a.Cfg.DocumentsDir); err != nil {
		if os.IsPermission(err) {
			return "cannot write documents dir"
		}
		return err.Error()
	}
	return "saved " + buf.Filename()
}

// drawEditor repaints the page: status header, wrapped text with the cursor
// marker, and the key hints.
func (a *App) drawEditor(buf *editor.Buffer, status string) {
	a.Term.Clear()
	a.Term.Println(a.styles.title.Render(" EDITOR ") + " " + buf.Status())
	a.Term.Println("")
	for _, line := range buf.View() {
		a.Term.Println(line)
	}
	a.Term.Println("")
	if status != "" {
		a.Term.Println(a.styles.money.Render(status))
	}
	a.Term.Println(a.styles.hint.Render("ctrl-s save · ctrl-n new/open · esc exit"))
}

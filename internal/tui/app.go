// Package tui is the arcade's terminal front end: raw-mode keyboard input
// and styled rendering for the menu, the tables and the editor.
package tui

import (
	"strconv"

	"github.com/fatih/color"

	"github.com/Flapjacck/pbat/internal/config"
	"github.com/Flapjacck/pbat/internal/engine"
	"github.com/Flapjacck/pbat/internal/store"
)

// App wires the terminal to the config and the session store.
type App struct {
	Cfg  *config.Config
	DB   store.DB
	Term *Terminal

	styles styles
}

// NewApp opens the terminal in raw mode.
func NewApp(cfg *config.Config, db store.DB) (*App, error) {
	t, err := OpenTerminal()
	if err != nil {
		return nil, err
	}
	return &App{Cfg: cfg, DB: db, Term: t, styles: newStyles()}, nil
}

// Close restores the terminal.
func (a *App) Close() error {
	return a.Term.Close()
}

// newSeeds generates a fresh server seed for one game session, paired with
// the configured client seed.
func (a *App) newSeeds() (engine.Seeds, error) {
	server, err := engine.NewServerSeed()
	if err != nil {
		return engine.Seeds{}, err
	}
	return engine.Seeds{Server: server, Client: a.Cfg.ClientSeed}, nil
}

// fairnessLines renders the end-of-session disclosure. The raw server seed
// is revealed here, exactly once: the store keeps only its hash, so this is
// the player's one chance to capture the seed and replay the session.
func fairnessLines(session *store.Session, seeds engine.Seeds) []string {
	return []string{
		"session " + session.ID,
		"server seed       " + seeds.Server,
		"server seed hash  " + session.ServerSeedHash,
		"client seed       " + seeds.Client,
		"verify any round: pbat verify --game " + session.Game +
			" --server-seed " + seeds.Server +
			" --client-seed " + seeds.Client + " --nonce <n>",
	}
}

// endSession reveals the session's seeds once any rounds were recorded.
func (a *App) endSession(session *store.Session, seeds engine.Seeds) {
	if session.Rounds == 0 {
		return
	}
	a.Term.Println("")
	for _, line := range fairnessLines(session, seeds) {
		a.Term.Println(a.styles.hint.Render(line))
	}
	a.Term.Println(a.styles.hint.Render("press any key"))
	a.waitForKey()
}

// message prints a colored status line.
func (a *App) message(c *color.Color, text string) {
	a.Term.Println(c.Sprint(text))
}

// selectNumber runs an up/down number selector like the cabinet's d-pad
// menus. Returns the chosen value and false when cancelled.
func (a *App) selectNumber(title, label string, val, min, max, step int) (int, bool) {
	for {
		a.Term.Clear()
		a.Term.Println(a.styles.title.Render(title))
		a.Term.Println("")
		a.Term.Printf("%s: %s\n", label, a.styles.selected.Render(formatNumber(val)))
		a.Term.Println("")
		a.Term.Println(a.styles.hint.Render("up/down adjust · enter confirm · esc cancel"))

		key, err := a.Term.ReadKey()
		if err != nil {
			return 0, false
		}
		switch key.Key {
		case KeyUp:
			val += step
			if val > max {
				val = max
			}
		case KeyDown:
			val -= step
			if val < min {
				val = min
			}
		case KeyEnter:
			return val, true
		case KeyEscape, KeyCtrlC:
			return 0, false
		}
	}
}

// waitForKey blocks until any key is pressed.
func (a *App) waitForKey() {
	a.Term.ReadKey()
}

// confirm asks a yes/no question; enter counts as yes.
func (a *App) confirm(question string) bool {
	a.Term.Println(a.styles.hint.Render(question + " [y/n]"))
	for {
		key, err := a.Term.ReadKey()
		if err != nil {
			return false
		}
		switch {
		case key.Key == KeyEnter:
			return true
		case key.Key == KeyEscape || key.Key == KeyCtrlC:
			return false
		case key.Key == KeyRune && (key.Rune == 'y' || key.Rune == 'Y'):
			return true
		case key.Key == KeyRune && (key.Rune == 'n' || key.Rune == 'N'):
			return false
		}
	}
}

func formatNumber(n int) string {
	return " " + strconv.Itoa(n) + " "
}

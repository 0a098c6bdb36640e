package tui

// Run shows the arcade menu and dispatches into the games until the
// player quits.
func (a *App) Run() error {
	items := []string{"Blackjack", "Roulette", "Text Editor", "Quit"}
	cursor := 0
	for {
		a.Term.Clear()
		a.Term.Println(a.styles.title.Render("  P B A T   A R C A D E  "))
		a.Term.Println("")
		for i, item := range items {
			if i == cursor {
				a.Term.Println("  " + a.styles.selected.Render("> "+item+" "))
			} else {
				a.Term.Println("    " + item)
			}
		}
		a.Term.Println("")
		a.Term.Println(a.styles.hint.Render("up/down move · enter select · esc quit"))

		key, err := a.Term.ReadKey()
		if err != nil {
			return err
		}
		switch key.Key {
		case KeyUp:
			if cursor > 0 {
				cursor--
			}
		case KeyDown:
			if cursor < len(items)-1 {
				cursor++
			}
		case KeyEscape, KeyCtrlC:
			return nil
		case KeyEnter:
			var err error
			switch cursor {
			case 0:
				err = a.RunBlackjack()
			case 1:
				err = a.RunRoulette()
			case 2:
				err = a.RunEditor()
			case 3:
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

// selectItem runs a generic list selector. Returns the chosen index and
// false when cancelled.
func (a *App) selectItem(title string, items []string) (int, bool) {
	cursor := 0
	for {
		a.Term.Clear()
		a.Term.Println(a.styles.title.Render(title))
		a.Term.Println("")
		for i, item := range items {
			if i == cursor {
				a.Term.Println("  " + a.styles.selected.Render("> "+item+" "))
			} else {
				a.Term.Println("    " + item)
			}
		}
		a.Term.Println("")
		a.Term.Println(a.styles.hint.Render("up/down move · enter select · esc back"))

		key, err := a.Term.ReadKey()
		if err != nil {
			return 0, false
		}
		switch key.Key {
		case KeyUp:
			if cursor > 0 {
				cursor--
			}
		case KeyDown:
			if cursor < len(items)-1 {
				cursor++
			}
		case KeyEnter:
			return cursor, true
		case KeyEscape, KeyCtrlC:
			return 0, false
		}
	}
}

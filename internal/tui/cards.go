package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Flapjacck/pbat/internal/games"
)

// renderCard draws one card as a bordered box. Hidden cards show a back.
func (a *App) renderCard(c games.Card) string {
	if c.Hidden {
		return a.styles.cardBack.Render("░░░\n░░░\n░░░")
	}
	symbol := c.String()
	body := fmt.Sprintf("%-3s\n %s \n%3s", symbol, suitOnly(c), symbol)
	if c.IsRedSuit() {
		return a.styles.cardRed.Render(body)
	}
	return a.styles.cardBlk.Render(body)
}

func suitOnly(c games.Card) string {
	s := c.String()
	// The suit symbol is the final rune of the short form.
	runes := []rune(s)
	return string(runes[len(runes)-1])
}

// renderHand draws a named hand as a row of cards with its total beneath.
// The dealer's total shows only the visible cards while the hole card is
// face down.
func (a *App) renderHand(h *games.Hand) string {
	if len(h.Cards) == 0 {
		return h.Name + ": (no cards)"
	}
	boxes := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		boxes[i] = a.renderCard(c)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)

	label := fmt.Sprintf("%s: %d", h.Name, h.Value)
	if h.HasHidden() {
		label = fmt.Sprintf("%s showing: %d", h.Name, h.Showing())
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, label)
}

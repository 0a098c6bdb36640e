package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Status line colors for one-off messages outside the styled panels.
var (
	winColor  = color.New(color.FgGreen, color.Bold)
	loseColor = color.New(color.FgRed, color.Bold)
)

type styles struct {
	title    lipgloss.Style
	selected lipgloss.Style
	hint     lipgloss.Style
	money    lipgloss.Style
	win      lipgloss.Style
	lose     lipgloss.Style
	cardRed  lipgloss.Style
	cardBlk  lipgloss.Style
	cardBack lipgloss.Style

	pocketRed lipgloss.Style
	pocketGrn lipgloss.Style
}

func newStyles() styles {
	cardBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(0)).Background(lipgloss.ANSIColor(3)),
		hint:     lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		money:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		win:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		lose:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		cardRed:  cardBorder.Foreground(lipgloss.ANSIColor(1)),
		cardBlk:  cardBorder.Foreground(lipgloss.ANSIColor(7)),
		cardBack: cardBorder.Foreground(lipgloss.ANSIColor(4)),

		pocketRed: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(1)),
		pocketGrn: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2)),
	}
}

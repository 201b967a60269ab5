package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/basicstrategy/internal/card"
	"github.com/lox/basicstrategy/internal/strategy"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// actionColors is the chart palette, one colour per action code
var actionColors = map[strategy.Action]lipgloss.Color{
	strategy.Double:        lipgloss.Color("#2E8B57"), // green
	strategy.SplitIfDAS:    lipgloss.Color("#8B5A2B"), // brown
	strategy.DoubleOrStand: lipgloss.Color("#00CED1"), // cyan
	strategy.Hit:           lipgloss.Color("#DC143C"), // red
	strategy.Stand:         lipgloss.Color("#1E90FF"), // blue
	strategy.Surrender:     lipgloss.Color("#FF00FF"), // magenta
	strategy.Split:         lipgloss.Color("#FF8C00"), // orange
}

// ActionStyle returns the cell style for an action
func ActionStyle(a strategy.Action) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Bold(true).
		Width(cellWidth).
		Align(lipgloss.Center)
	if c, ok := actionColors[a]; ok {
		s = s.Background(c)
	}
	return s
}

// FormatCard renders a card code coloured by suit, or a card back when face
// down
func FormatCard(c card.Card) string {
	if !c.FaceUp {
		return InfoStyle.Render("??")
	}
	if c.IsRed() {
		return RedCardStyle.Render(c.Pretty())
	}
	return BlackCardStyle.Render(c.Pretty())
}

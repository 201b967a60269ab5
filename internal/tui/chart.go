package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/basicstrategy/internal/strategy"
)

const (
	cellWidth  = 5
	labelWidth = 5
)

// RenderChart renders the hard, soft and pair tables against each dealer
// upcard, followed by a legend
func RenderChart(c strategy.Chart) string {
	header := make([]string, 0, len(c.Dealer)+1)
	header = append(header, LabelStyle.Width(labelWidth).Render(""))
	for _, d := range c.Dealer {
		header = append(header, LabelStyle.Width(cellWidth).Align(lipgloss.Center).Render(d.Rank.String()))
	}
	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, header...)

	sections := []struct {
		title string
		rows  []strategy.ChartRow
	}{
		{"Hard totals", c.Hard},
		{"Soft totals", c.Soft},
		{"Pairs", c.Pairs},
	}

	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(HeaderStyle.Render(" " + s.title + " "))
		b.WriteString("\n")
		b.WriteString(headerRow)
		b.WriteString("\n")
		for _, row := range s.rows {
			b.WriteString(renderRow(row))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(RenderLegend())
	return b.String()
}

func renderRow(row strategy.ChartRow) string {
	cells := make([]string, 0, len(row.Actions)+1)
	cells = append(cells, LabelStyle.Width(labelWidth).Render(row.Label))
	for _, a := range row.Actions {
		cells = append(cells, ActionStyle(a).Render(a.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// RenderLegend lists every action code with its description
func RenderLegend() string {
	lines := make([]string, 0, len(strategy.Actions()))
	for _, a := range strategy.Actions() {
		lines = append(lines, ActionStyle(a).Render(a.String())+" "+a.Describe())
	}
	return strings.Join(lines, "\n")
}

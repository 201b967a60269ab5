package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/basicstrategy/internal/strategy"
	"github.com/lox/basicstrategy/internal/tui"
)

type ChartCmd struct {
	NoColor bool `help:"Disable colour output"`
}

func (c *ChartCmd) Run(g *Globals) error {
	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	fmt.Fprintln(g.stdout(), tui.RenderChart(strategy.BuildChart()))
	return nil
}

package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate a hand against a dealer upcard"`
	Deal     DealCmd          `cmd:"" help:"Deal training rounds for a mode"`
	Chart    ChartCmd         `cmd:"" help:"Print the basic strategy chart"`
	Drill    DrillCmd         `cmd:"" help:"Run the interactive basic strategy drill"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate random rounds and report action frequencies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bstrategy"),
		kong.Description("Blackjack basic strategy trainer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

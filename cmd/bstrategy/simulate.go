package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/basicstrategy/internal/randutil"
	"github.com/lox/basicstrategy/internal/simulator"
	"github.com/lox/basicstrategy/internal/statistics"
	"github.com/lox/basicstrategy/internal/strategy"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

type SimulateCmd struct {
	Rounds  int    `short:"n" help:"Number of rounds to deal; defaults to the config file"`
	Workers int    `short:"w" help:"Number of parallel workers; defaults to the config file"`
	Seed    *int64 `help:"Random seed for reproducible results"`
	Mode    string `short:"m" help:"Training mode (basic, soft, hard, split); defaults to the config file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	m, err := resolveMode(c.Mode, cfg)
	if err != nil {
		return err
	}

	rounds := cfg.Simulate.Rounds
	if c.Rounds != 0 {
		rounds = c.Rounds
	}
	workers := cfg.Simulate.Workers
	if c.Workers != 0 {
		workers = c.Workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(simulator.Config{
		Rounds:  rounds,
		Workers: workers,
		Mode:    m,
		Rules:   cfg.TableRules(),
		Seed:    randutil.Seed(c.Seed),
		Logger:  g.logger(),
	})
	report, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	printReport(g.stdout(), report)
	return nil
}

func printReport(out io.Writer, r *simulator.Report) {
	fmt.Fprintf(out, "%s %d rounds, mode %s, %d workers, seed %d (%v)\n\n",
		headerStyle.Render("simulated"), r.Rounds, r.Mode, r.Workers, r.Seed, r.Elapsed.Round(time.Millisecond))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "action\tcount\tshare")
	writeDistribution(w, r.Actions)
	_ = w.Flush()

	for _, cat := range simulator.Categories() {
		d := r.Categories[cat]
		if d.Total == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s %d rounds\n", categoryStyle.Render(cat.String()), d.Total)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		writeDistribution(w, d)
		_ = w.Flush()
	}

	fmt.Fprintf(out, "\n%s\n", categoryStyle.Render("resolved moves"))
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, mv := range []strategy.Move{strategy.MoveHit, strategy.MoveStand, strategy.MoveDouble, strategy.MoveSplit, strategy.MoveSurrender} {
		if n := r.Moves[mv]; n > 0 {
			fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", mv, n, 100*float64(n)/float64(r.Rounds))
		}
	}
	_ = w.Flush()
}

func writeDistribution(w io.Writer, d *statistics.Distribution) {
	for _, a := range d.Ranked() {
		fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", a, d.Counts[a], 100*d.Share(a))
	}
}

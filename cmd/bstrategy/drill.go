package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/basicstrategy/internal/fileutil"
	"github.com/lox/basicstrategy/internal/randutil"
	"github.com/lox/basicstrategy/internal/statistics"
	"github.com/lox/basicstrategy/internal/trainer"
	"github.com/lox/basicstrategy/internal/tui"
)

type DrillCmd struct {
	Mode     string `short:"m" help:"Training mode (basic, soft, hard, split); defaults to the config file"`
	User     string `short:"u" help:"Name outcomes are recorded under; defaults to the config file"`
	Rounds   *int   `short:"r" help:"Stop after this many rounds (0 for no limit); defaults to the config file"`
	Seed     *int64 `help:"Random seed for reproducible deals"`
	LogFile  string `help:"Write logs and graded outcomes to this file" type:"path"`
	Outcomes string `help:"Append graded outcomes to this JSON file on exit" type:"path"`
	State    string `help:"Resume the unanswered round from this JSON file and save it on exit" type:"path"`
}

func (c *DrillCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	m, err := resolveMode(c.Mode, cfg)
	if err != nil {
		return err
	}

	tc := cfg.TrainerConfig()
	tc.Mode = m
	if c.User != "" {
		tc.User = c.User
	}
	if c.Seed != nil {
		tc.Seed = *c.Seed
	} else if tc.Seed == 0 {
		tc.Seed = randutil.Seed(nil)
	}
	rounds := cfg.Trainer.Rounds
	if c.Rounds != nil {
		rounds = *c.Rounds
	}

	// The drill owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}()
		logOut = f
	}
	logger := newLogger(logOut, g.Debug)

	memory := trainer.NewMemoryRecorder()
	recorder := trainer.Recorders{memory, trainer.NewLogRecorder(logger)}
	session := trainer.New(tc, recorder, quartz.NewReal(), logger)

	logger.Info("drill starting", "user", tc.User, "mode", m, "rounds", rounds, "seed", tc.Seed)

	ctx := context.Background()
	model := tui.NewDrillModel(ctx, session, rounds, logger)
	if c.State != "" {
		if err := resumeRound(model, c.State); err != nil {
			return err
		}
	}

	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("drill failed: %w", err)
	}

	if c.State != "" {
		if err := saveRound(session, c.State); err != nil {
			return err
		}
	}
	if c.Outcomes != "" {
		if err := appendOutcomes(c.Outcomes, memory.Outcomes()); err != nil {
			return err
		}
	}

	printTally(g.stdout(), session.Tally())
	return nil
}

func resumeRound(model *tui.DrillModel, path string) error {
	var st trainer.State
	ok, err := fileutil.ReadJSON(path, &st)
	if err != nil || !ok {
		return err
	}
	if err := model.Resume(st); err != nil {
		return fmt.Errorf("resume %s: %w", path, err)
	}
	return nil
}

// saveRound writes the unanswered round, or removes a stale file when every
// round was graded
func saveRound(session *trainer.Session, path string) error {
	st, ok := session.Snapshot()
	if !ok {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		return nil
	}
	return fileutil.WriteJSON(path, st)
}

func appendOutcomes(path string, outcomes []trainer.Outcome) error {
	var existing []trainer.Outcome
	if _, err := fileutil.ReadJSON(path, &existing); err != nil {
		return err
	}
	return fileutil.WriteJSON(path, append(existing, outcomes...))
}

func printTally(out io.Writer, t *statistics.Tally) {
	if t.Rounds == 0 {
		fmt.Fprintln(out, "No rounds graded.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "mode\trounds\tcorrect\taccuracy\t95% interval")
	for _, m := range t.Modes() {
		writeBucket(w, m.String(), *t.ByMode[m])
	}
	writeBucket(w, "total", t.Bucket)
	_ = w.Flush()

	if a, b, ok := t.WorstAction(); ok && b.Right < b.Rounds {
		fmt.Fprintf(out, "\nWeakest action: %s, %d/%d correct\n", a.Describe(), b.Right, b.Rounds)
	}
}

func writeBucket(w io.Writer, label string, b statistics.Bucket) {
	lo, hi := b.ConfidenceInterval95()
	fmt.Fprintf(w, "%s\t%d\t%d\t%.1f%%\t%.1f%% - %.1f%%\n",
		label, b.Rounds, b.Right, 100*b.Accuracy(), 100*lo, 100*hi)
}

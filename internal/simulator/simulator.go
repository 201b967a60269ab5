// Package simulator deals random rounds in parallel and counts how often
// each basic strategy action is the answer.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/basicstrategy/internal/deck"
	"github.com/lox/basicstrategy/internal/hand"
	"github.com/lox/basicstrategy/internal/mode"
	"github.com/lox/basicstrategy/internal/randutil"
	"github.com/lox/basicstrategy/internal/statistics"
	"github.com/lox/basicstrategy/internal/strategy"
)

// Category groups player hands the way the strategy chart does
type Category int

const (
	Hard Category = iota
	Soft
	Pair
)

// Categories returns every category in chart order
func Categories() []Category {
	return []Category{Hard, Soft, Pair}
}

func (c Category) String() string {
	switch c {
	case Soft:
		return "soft"
	case Pair:
		return "pair"
	default:
		return "hard"
	}
}

func categorize(h *hand.Hand) Category {
	switch {
	case h.IsPair():
		return Pair
	case h.HasAce():
		return Soft
	default:
		return Hard
	}
}

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Workers int // 0 means one per CPU, capped at 8
	Mode    mode.Mode
	Rules   strategy.Rules
	Seed    int64
	Logger  *log.Logger
}

// Report is the merged result of a simulation
type Report struct {
	Mode       mode.Mode
	Rounds     int
	Workers    int
	Seed       int64
	Elapsed    time.Duration
	Actions    *statistics.Distribution
	Categories map[Category]*statistics.Distribution
	Moves      map[strategy.Move]int
}

func newReport() *Report {
	r := &Report{
		Actions:    statistics.NewDistribution(),
		Categories: make(map[Category]*statistics.Distribution),
		Moves:      make(map[strategy.Move]int),
	}
	for _, c := range Categories() {
		r.Categories[c] = statistics.NewDistribution()
	}
	return r
}

func (r *Report) merge(other *Report) {
	r.Actions.Merge(other.Actions)
	for c, d := range other.Categories {
		r.Categories[c].Merge(d)
	}
	for m, n := range other.Moves {
		r.Moves[m] += n
	}
}

// Simulator runs strategy simulations
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Simulator{config: config, logger: logger.WithPrefix("simulator")}
}

const checkEvery = 1024

// Run deals config.Rounds rounds split across workers. The same seed and
// worker count always produce the same report.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if s.config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", s.config.Rounds)
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = min(runtime.NumCPU(), 8)
	}
	workers = min(workers, s.config.Rounds)

	perWorker := s.config.Rounds / workers
	remainder := s.config.Rounds % workers

	start := time.Now()
	results := make([]*Report, workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		rounds := perWorker
		if w < remainder {
			rounds++
		}
		seed := randutil.Split(s.config.Seed, w)

		g.Go(func() error {
			r, err := s.runWorker(ctx, seed, rounds)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := newReport()
	for _, r := range results {
		report.merge(r)
	}
	report.Mode = s.config.Mode
	report.Rounds = report.Actions.Total
	report.Workers = workers
	report.Seed = s.config.Seed
	report.Elapsed = time.Since(start)

	if report.Rounds != s.config.Rounds {
		return nil, errors.New("merged round count does not match requested rounds")
	}

	s.logger.Debug("simulation complete",
		"rounds", report.Rounds,
		"workers", workers,
		"elapsed", report.Elapsed,
	)
	return report, nil
}

func (s *Simulator) runWorker(ctx context.Context, seed int64, rounds int) (*Report, error) {
	rng := randutil.New(seed)
	r := newReport()
	for i := 0; i < rounds; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		d := deck.DealSolo(rng, s.config.Mode)
		player, up := d.PlayerHand(), d.Upcard()

		action := strategy.Evaluate(player, up, s.config.Mode)
		r.Actions.Add(action)
		r.Categories[categorize(player)].Add(action)
		r.Moves[strategy.Resolve(player, up, s.config.Mode, s.config.Rules)]++
	}
	return r, nil
}

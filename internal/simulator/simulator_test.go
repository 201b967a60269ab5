package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/basicstrategy/internal/mode"
	"github.com/lox/basicstrategy/internal/strategy"
)

func testConfig(m mode.Mode, rounds, workers int) Config {
	return Config{
		Rounds:  rounds,
		Workers: workers,
		Mode:    m,
		Rules:   strategy.DefaultRules(),
		Seed:    42,
		Logger:  log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
	}
}

func TestRunCountsEveryRound(t *testing.T) {
	for _, m := range mode.All() {
		t.Run(m.String(), func(t *testing.T) {
			report, err := New(testConfig(m, 5000, 4)).Run(context.Background())
			require.NoError(t, err)

			assert.Equal(t, 5000, report.Rounds)
			assert.Equal(t, 4, report.Workers)
			assert.Equal(t, m, report.Mode)

			sum := 0
			for _, n := range report.Actions.Counts {
				sum += n
			}
			assert.Equal(t, 5000, sum)

			byCategory := 0
			for _, d := range report.Categories {
				byCategory += d.Total
			}
			assert.Equal(t, 5000, byCategory)

			moves := 0
			for _, n := range report.Moves {
				moves += n
			}
			assert.Equal(t, 5000, moves)
		})
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := New(testConfig(mode.Basic, 10000, 3)).Run(context.Background())
	require.NoError(t, err)
	b, err := New(testConfig(mode.Basic, 10000, 3)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Actions, b.Actions)
	assert.Equal(t, a.Categories, b.Categories)
	assert.Equal(t, a.Moves, b.Moves)
}

func TestRunModeShapesActions(t *testing.T) {
	split, err := New(testConfig(mode.Split, 2000, 2)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2000, split.Categories[Pair].Total)

	hard, err := New(testConfig(mode.Hard, 2000, 2)).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, hard.Actions.Counts[strategy.Split])
	assert.Zero(t, hard.Actions.Counts[strategy.SplitIfDAS])
	assert.Zero(t, hard.Categories[Soft].Total)

	soft, err := New(testConfig(mode.Soft, 2000, 2)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2000, soft.Categories[Soft].Total)
	assert.Zero(t, soft.Categories[Pair].Total)
}

func TestRunMoreWorkersThanRounds(t *testing.T) {
	report, err := New(testConfig(mode.Basic, 3, 16)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Rounds)
	assert.Equal(t, 3, report.Workers)
}

func TestRunRejectsNoRounds(t *testing.T) {
	_, err := New(testConfig(mode.Basic, 0, 1)).Run(context.Background())
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(testConfig(mode.Basic, 100000, 2)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "hard", Hard.String())
	assert.Equal(t, "soft", Soft.String())
	assert.Equal(t, "pair", Pair.String())
}

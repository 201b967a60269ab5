package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/basicstrategy/internal/mode"
	"github.com/lox/basicstrategy/internal/strategy"
)

func TestBucket(t *testing.T) {
	var b Bucket
	assert.Zero(t, b.Accuracy())
	assert.Zero(t, b.StdError())

	for i := 0; i < 100; i++ {
		b.add(i < 80)
	}
	assert.InDelta(t, 0.8, b.Accuracy(), 1e-9)
	assert.InDelta(t, 0.04, b.StdError(), 1e-9)

	lo, hi := b.ConfidenceInterval95()
	assert.InDelta(t, 0.7216, lo, 1e-4)
	assert.InDelta(t, 0.8784, hi, 1e-4)
}

func TestConfidenceIntervalClamped(t *testing.T) {
	b := Bucket{Rounds: 3, Right: 3}
	lo, hi := b.ConfidenceInterval95()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestTally(t *testing.T) {
	tally := NewTally()
	tally.Add(Result{Mode: mode.Basic, Correct: strategy.Stand, Guess: strategy.Stand})
	tally.Add(Result{Mode: mode.Basic, Correct: strategy.Split, Guess: strategy.Hit})
	tally.Add(Result{Mode: mode.Soft, Correct: strategy.DoubleOrStand, Guess: strategy.Double})
	tally.Add(Result{Mode: mode.Soft, Correct: strategy.DoubleOrStand, Guess: strategy.DoubleOrStand})
	tally.Add(Result{Mode: mode.Split, Correct: strategy.Split, Guess: strategy.Hit})

	assert.Equal(t, 5, tally.Rounds)
	assert.Equal(t, 2, tally.Right)
	assert.Equal(t, []mode.Mode{mode.Basic, mode.Soft, mode.Split}, tally.Modes())
	assert.Equal(t, 2, tally.ByMode[mode.Soft].Rounds)
	assert.Equal(t, 1, tally.ByMode[mode.Soft].Right)
	assert.Equal(t, 2, tally.Mistakes[strategy.Split][strategy.Hit])
	require.NoError(t, tally.Validate())

	worst, b, ok := tally.WorstAction()
	require.True(t, ok)
	assert.Equal(t, strategy.Split, worst)
	assert.Equal(t, 2, b.Rounds)
}

func TestTallyValidateDetectsMismatch(t *testing.T) {
	tally := NewTally()
	tally.Add(Result{Mode: mode.Hard, Correct: strategy.Hit, Guess: strategy.Hit})
	tally.Rounds++
	assert.Error(t, tally.Validate())
}

func TestWorstActionEmpty(t *testing.T) {
	_, _, ok := NewTally().WorstAction()
	assert.False(t, ok)
}

func TestDistribution(t *testing.T) {
	a := NewDistribution()
	a.Add(strategy.Hit)
	a.Add(strategy.Hit)
	a.Add(strategy.Stand)

	b := NewDistribution()
	b.Add(strategy.Stand)
	b.Add(strategy.Stand)
	b.Add(strategy.Stand)
	b.Add(strategy.Surrender)

	a.Merge(b)
	assert.Equal(t, 7, a.Total)
	assert.InDelta(t, 4.0/7.0, a.Share(strategy.Stand), 1e-9)
	assert.Equal(t, []strategy.Action{strategy.Stand, strategy.Hit, strategy.Surrender}, a.Ranked())
	assert.Zero(t, NewDistribution().Share(strategy.Hit))
}

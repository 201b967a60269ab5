package statistics

import (
	"fmt"
	"math"
	"slices"

	"github.com/lox/basicstrategy/internal/mode"
	"github.com/lox/basicstrategy/internal/strategy"
)

// Result is one graded training round
type Result struct {
	Mode    mode.Mode
	Correct strategy.Action // canonical action
	Guess   strategy.Action
}

// Right reports whether the guess matched the canonical action
func (r Result) Right() bool {
	return r.Guess == r.Correct
}

// Bucket tracks right and wrong guesses for one slice of results
type Bucket struct {
	Rounds int
	Right  int
}

// Accuracy returns the share of right guesses
func (b Bucket) Accuracy() float64 {
	if b.Rounds == 0 {
		return 0
	}
	return float64(b.Right) / float64(b.Rounds)
}

// StdError returns the standard error of the accuracy
func (b Bucket) StdError() float64 {
	if b.Rounds == 0 {
		return 0
	}
	p := b.Accuracy()
	return math.Sqrt(p * (1 - p) / float64(b.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the
// accuracy, clamped to [0, 1]
func (b Bucket) ConfidenceInterval95() (float64, float64) {
	p := b.Accuracy()
	margin := 1.96 * b.StdError()
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

func (b *Bucket) add(right bool) {
	b.Rounds++
	if right {
		b.Right++
	}
}

// Tally aggregates training results overall, per mode and per canonical action
type Tally struct {
	Bucket
	ByMode   map[mode.Mode]*Bucket
	ByAction map[strategy.Action]*Bucket
	// Mistakes counts wrong guesses keyed by canonical action then guess
	Mistakes map[strategy.Action]map[strategy.Action]int
}

// NewTally returns an empty tally
func NewTally() *Tally {
	return &Tally{
		ByMode:   make(map[mode.Mode]*Bucket),
		ByAction: make(map[strategy.Action]*Bucket),
		Mistakes: make(map[strategy.Action]map[strategy.Action]int),
	}
}

// Add incorporates a result
func (t *Tally) Add(r Result) {
	right := r.Right()
	t.Bucket.add(right)
	bucket(t.ByMode, r.Mode).add(right)
	bucket(t.ByAction, r.Correct).add(right)

	if !right {
		if t.Mistakes[r.Correct] == nil {
			t.Mistakes[r.Correct] = make(map[strategy.Action]int)
		}
		t.Mistakes[r.Correct][r.Guess]++
	}
}

func bucket[K comparable](m map[K]*Bucket, k K) *Bucket {
	b, ok := m[k]
	if !ok {
		b = &Bucket{}
		m[k] = b
	}
	return b
}

// Modes returns the modes seen, in display order
func (t *Tally) Modes() []mode.Mode {
	var out []mode.Mode
	for _, m := range append(mode.All(), mode.Unknown) {
		if _, ok := t.ByMode[m]; ok {
			out = append(out, m)
		}
	}
	return out
}

// WorstAction returns the canonical action with the lowest accuracy, ties
// broken by more rounds played
func (t *Tally) WorstAction() (strategy.Action, Bucket, bool) {
	var (
		worst strategy.Action
		best  Bucket
		found bool
	)
	for _, a := range strategy.Actions() {
		b, ok := t.ByAction[a]
		if !ok {
			continue
		}
		if !found || b.Accuracy() < best.Accuracy() ||
			(b.Accuracy() == best.Accuracy() && b.Rounds > best.Rounds) {
			worst, best, found = a, *b, true
		}
	}
	return worst, best, found
}

// Validate checks that the per mode and per action totals agree
func (t *Tally) Validate() error {
	sum := func(buckets []*Bucket) (rounds, right int) {
		for _, b := range buckets {
			rounds += b.Rounds
			right += b.Right
		}
		return rounds, right
	}

	modeRounds, modeRight := sum(values(t.ByMode))
	if modeRounds != t.Rounds || modeRight != t.Right {
		return fmt.Errorf("mode totals (%d/%d) do not match tally (%d/%d)", modeRight, modeRounds, t.Right, t.Rounds)
	}
	actionRounds, actionRight := sum(values(t.ByAction))
	if actionRounds != t.Rounds || actionRight != t.Right {
		return fmt.Errorf("action totals (%d/%d) do not match tally (%d/%d)", actionRight, actionRounds, t.Right, t.Rounds)
	}
	return nil
}

func values[K comparable](m map[K]*Bucket) []*Bucket {
	out := make([]*Bucket, 0, len(m))
	for _, b := range m {
		out = append(out, b)
	}
	return out
}

// Distribution counts how often each action is the canonical answer
type Distribution struct {
	Total  int
	Counts map[strategy.Action]int
}

// NewDistribution returns an empty distribution
func NewDistribution() *Distribution {
	return &Distribution{Counts: make(map[strategy.Action]int)}
}

// Add counts one action
func (d *Distribution) Add(a strategy.Action) {
	d.Total++
	d.Counts[a]++
}

// Merge adds the counts of other into d
func (d *Distribution) Merge(other *Distribution) {
	d.Total += other.Total
	for a, n := range other.Counts {
		d.Counts[a] += n
	}
}

// Share returns the fraction of rounds where a was the answer
func (d *Distribution) Share(a strategy.Action) float64 {
	if d.Total == 0 {
		return 0
	}
	return float64(d.Counts[a]) / float64(d.Total)
}

// Ranked returns the actions seen, most frequent first
func (d *Distribution) Ranked() []strategy.Action {
	var out []strategy.Action
	for _, a := range strategy.Actions() {
		if d.Counts[a] > 0 {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b strategy.Action) int {
		return d.Counts[b] - d.Counts[a]
	})
	return out
}

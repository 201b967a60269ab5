package trainer

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/basicstrategy/internal/card"
	"github.com/lox/basicstrategy/internal/mode"
	"github.com/lox/basicstrategy/internal/strategy"
)

// Outcome is one graded round as handed to a Recorder
type Outcome struct {
	RoundID     string          `json:"round_id"`
	User        string          `json:"user"`
	Mode        mode.Mode       `json:"training_type"`
	WasCorrect  bool            `json:"was_correct"`
	CorrectMove strategy.Action `json:"correct_move"`
	GuessedMove strategy.Action `json:"guessed_move"`
	Card1       card.Rank       `json:"card1"`
	Card2       card.Rank       `json:"card2"`
	HandValue   int             `json:"hand_value"`
	DealerCard  int             `json:"dealer_card"`
	UploadTime  time.Time       `json:"upload_time"`
}

// Recorder persists outcomes. Implementations own their storage; the
// trainer only calls Record once per graded round.
type Recorder interface {
	Record(ctx context.Context, o Outcome) error
}

// MemoryRecorder keeps outcomes in memory. Safe for concurrent use.
type MemoryRecorder struct {
	mu       sync.Mutex
	outcomes []Outcome
}

// NewMemoryRecorder returns an empty recorder
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record stores the outcome
func (r *MemoryRecorder) Record(ctx context.Context, o Outcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
	return nil
}

// Outcomes returns a copy of everything recorded so far
func (r *MemoryRecorder) Outcomes() []Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.outcomes)
}

// LogRecorder writes outcomes to a logger
type LogRecorder struct {
	logger *log.Logger
}

// NewLogRecorder returns a recorder logging at info level
func NewLogRecorder(logger *log.Logger) *LogRecorder {
	return &LogRecorder{logger: logger.WithPrefix("outcome")}
}

// Record logs the outcome
func (r *LogRecorder) Record(_ context.Context, o Outcome) error {
	r.logger.Info("round graded",
		"round", o.RoundID,
		"user", o.User,
		"mode", o.Mode,
		"correct", o.WasCorrect,
		"answer", o.CorrectMove,
		"guess", o.GuessedMove,
		"hand", o.HandValue,
		"dealer", o.DealerCard,
	)
	return nil
}

// Recorders fans an outcome out to several recorders, stopping at the
// first error
type Recorders []Recorder

// Record records to each recorder in turn
func (rs Recorders) Record(ctx context.Context, o Outcome) error {
	for _, r := range rs {
		if err := r.Record(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

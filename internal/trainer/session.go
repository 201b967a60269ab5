// Package trainer runs basic strategy training rounds: it deals a hand for
// the selected mode, grades the player's guess against the evaluator and
// hands the outcome to a Recorder.
package trainer

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/basicstrategy/internal/card"
	"github.com/lox/basicstrategy/internal/deck"
	"github.com/lox/basicstrategy/internal/hand"
	"github.com/lox/basicstrategy/internal/mode"
	"github.com/lox/basicstrategy/internal/randutil"
	"github.com/lox/basicstrategy/internal/roundid"
	"github.com/lox/basicstrategy/internal/statistics"
	"github.com/lox/basicstrategy/internal/strategy"
)

// ErrNoRound is returned when guessing before a round has been dealt
var ErrNoRound = errors.New("no round in progress")

// Config describes a training session
type Config struct {
	User  string
	Mode  mode.Mode
	Rules strategy.Rules
	Seed  int64
}

// Round is one dealt training hand
type Round struct {
	ID     string
	Mode   mode.Mode
	Player *hand.Hand
	Dealer *hand.Hand
	Answer strategy.Action
	Move   strategy.Move // Answer resolved against the table rules
	Dealt  time.Time
}

// Upcard returns the dealer's visible card
func (r *Round) Upcard() card.Card {
	return r.Dealer.Card(0)
}

// Session deals and grades rounds. A Session is not safe for concurrent use.
type Session struct {
	config   Config
	rng      *rand.Rand
	clock    quartz.Clock
	recorder Recorder
	logger   *log.Logger
	tally    *statistics.Tally
	current  *Round
}

// New creates a session. A nil recorder discards outcomes.
func New(config Config, recorder Recorder, clock quartz.Clock, logger *log.Logger) *Session {
	if recorder == nil {
		recorder = Recorders(nil)
	}
	return &Session{
		config:   config,
		rng:      randutil.New(config.Seed),
		clock:    clock,
		recorder: recorder,
		logger:   logger.WithPrefix("trainer"),
		tally:    statistics.NewTally(),
	}
}

// Mode returns the mode new rounds are dealt in
func (s *Session) Mode() mode.Mode {
	return s.config.Mode
}

// SetMode changes the mode for subsequent rounds
func (s *Session) SetMode(m mode.Mode) {
	s.logger.Debug("mode changed", "from", s.config.Mode, "to", m)
	s.config.Mode = m
}

// User returns the name outcomes are recorded under
func (s *Session) User() string {
	return s.config.User
}

// Current returns the round awaiting a guess, or nil
func (s *Session) Current() *Round {
	return s.current
}

// Tally returns the running accuracy of the session
func (s *Session) Tally() *statistics.Tally {
	return s.tally
}

// Deal starts a new round, replacing any round still awaiting a guess
func (s *Session) Deal() *Round {
	d := deck.DealSolo(s.rng, s.config.Mode)
	s.current = s.newRound(s.config.Mode, d.PlayerHand(), d.DealerHand())
	s.logger.Debug("round dealt",
		"round", s.current.ID,
		"player", s.current.Player.CardString(),
		"upcard", s.current.Upcard(),
		"answer", s.current.Answer,
	)
	return s.current
}

func (s *Session) newRound(m mode.Mode, player, dealer *hand.Hand) *Round {
	up := dealer.Card(0)
	return &Round{
		ID:     roundid.Generate(),
		Mode:   m,
		Player: player,
		Dealer: dealer,
		Answer: strategy.Evaluate(player, up, m),
		Move:   strategy.Resolve(player, up, m, s.config.Rules),
		Dealt:  s.clock.Now(),
	}
}

// Guess grades a guess for the current round, records the outcome and
// clears the round
func (s *Session) Guess(ctx context.Context, guess strategy.Action) (Outcome, error) {
	r := s.current
	if r == nil {
		return Outcome{}, ErrNoRound
	}

	o := Outcome{
		RoundID:     r.ID,
		User:        s.config.User,
		Mode:        r.Mode,
		WasCorrect:  guess == r.Answer,
		CorrectMove: r.Answer,
		GuessedMove: guess,
		Card1:       r.Player.Card(0).Rank,
		Card2:       r.Player.Card(1).Rank,
		HandValue:   r.Player.Value(),
		DealerCard:  r.Upcard().Value(),
		UploadTime:  s.clock.Now(),
	}

	if err := s.recorder.Record(ctx, o); err != nil {
		return o, fmt.Errorf("record round %s: %w", r.ID, err)
	}

	s.tally.Add(statistics.Result{Mode: r.Mode, Correct: r.Answer, Guess: guess})
	s.current = nil
	s.logger.Debug("round graded", "round", r.ID, "correct", o.WasCorrect, "guess", guess)
	return o, nil
}

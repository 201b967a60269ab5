package strategy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAction is returned when an action code is not recognised
var ErrInvalidAction = errors.New("invalid action")

// Action is the basic strategy recommendation for a hand. Several actions
// are conditional on table rules, see Resolve.
type Action int

const (
	// Hit takes another card
	Hit Action = iota
	// Stand keeps the current total
	Stand
	// Double doubles if allowed, otherwise hits
	Double
	// DoubleOrStand doubles if allowed, otherwise stands
	DoubleOrStand
	// Split splits the pair
	Split
	// SplitIfDAS splits only when doubling after a split is allowed
	SplitIfDAS
	// Surrender gives up half the bet
	Surrender
)

// Actions returns every action in display order
func Actions() []Action {
	return []Action{Hit, Stand, Double, DoubleOrStand, Split, SplitIfDAS, Surrender}
}

// String returns the short action code used for grading guesses
func (a Action) String() string {
	switch a {
	case Hit:
		return "h"
	case Stand:
		return "s"
	case Double:
		return "d"
	case DoubleOrStand:
		return "ds"
	case Split:
		return "spl"
	case SplitIfDAS:
		return "das"
	case Surrender:
		return "sur"
	default:
		return "?"
	}
}

// Describe returns a human readable label including the code
func (a Action) Describe() string {
	switch a {
	case Hit:
		return "hit (h)"
	case Stand:
		return "stand (s)"
	case Double:
		return "double or hit (d)"
	case DoubleOrStand:
		return "double or stand (ds)"
	case Split:
		return "split (spl)"
	case SplitIfDAS:
		return "double after split (das)"
	case Surrender:
		return "surrender (sur)"
	default:
		return "unknown"
	}
}

// ParseAction parses an action code such as "ds" or "spl"
func ParseAction(s string) (Action, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Actions() {
		if a.String() == code {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

// SplitAdvice is the outcome of the pair splitting table
type SplitAdvice int

const (
	// DontSplit plays the pair as a total
	DontSplit SplitAdvice = iota
	// SplitPair always splits
	SplitPair
	// SplitIfDASAllowed splits only when doubling after a split is permitted
	SplitIfDASAllowed
)

// String returns a short label for the advice
func (s SplitAdvice) String() string {
	switch s {
	case SplitPair:
		return "split"
	case SplitIfDASAllowed:
		return "split if das"
	default:
		return "no split"
	}
}

// Action converts advice to an action; ok is false for DontSplit
func (s SplitAdvice) Action() (Action, bool) {
	switch s {
	case SplitPair:
		return Split, true
	case SplitIfDASAllowed:
		return SplitIfDAS, true
	default:
		return 0, false
	}
}

// MarshalText implements encoding.TextMarshaler
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Action) UnmarshalText(b []byte) error {
	parsed, err := ParseAction(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

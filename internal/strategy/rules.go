package strategy

import (
	"github.com/lox/basicstrategy/internal/card"
	"github.com/lox/basicstrategy/internal/hand"
	"github.com/lox/basicstrategy/internal/mode"
)

// Rules are the table options that decide conditional actions
type Rules struct {
	DoubleAfterSplit bool
	Double           bool
	Surrender        bool
}

// DefaultRules allows doubling, doubling after split and late surrender
func DefaultRules() Rules {
	return Rules{DoubleAfterSplit: true, Double: true, Surrender: true}
}

// Move is a concrete play at the table
type Move int

const (
	MoveHit Move = iota
	MoveStand
	MoveDouble
	MoveSplit
	MoveSurrender
)

// String returns the move name
func (m Move) String() string {
	switch m {
	case MoveHit:
		return "hit"
	case MoveStand:
		return "stand"
	case MoveDouble:
		return "double"
	case MoveSplit:
		return "split"
	case MoveSurrender:
		return "surrender"
	default:
		return "unknown"
	}
}

// Resolve evaluates the hand and turns conditional actions into the move to
// make under the given rules. Doubling and surrender need a two card hand.
func Resolve(h *hand.Hand, dealer card.Card, m mode.Mode, rules Rules) Move {
	twoCards := h.Len() == 2
	canDouble := rules.Double && twoCards

	a := Evaluate(h, dealer, m)
	if a == Surrender && !(rules.Surrender && twoCards) {
		a = evaluateWithoutSurrender(h, dealer, m)
	}
	if a == SplitIfDAS && !rules.DoubleAfterSplit {
		a = ShouldDouble(h, dealer)
	}

	switch a {
	case Surrender:
		return MoveSurrender
	case Split, SplitIfDAS:
		return MoveSplit
	case Double:
		if canDouble {
			return MoveDouble
		}
		return MoveHit
	case DoubleOrStand:
		if canDouble {
			return MoveDouble
		}
		return MoveStand
	case Stand:
		return MoveStand
	default:
		return MoveHit
	}
}

// Package strategy implements blackjack basic strategy for two card hands.
//
// Evaluation runs in a fixed order: surrender, then pair splitting (skipped
// in soft and hard drills), then the double/stand/hit tables. Every function
// is pure and safe for concurrent use.
package strategy

import (
	"github.com/lox/basicstrategy/internal/card"
	"github.com/lox/basicstrategy/internal/hand"
	"github.com/lox/basicstrategy/internal/mode"
)

// Evaluate returns the basic strategy action for the hand against the dealer
// upcard. Unknown modes behave like Basic.
func Evaluate(h *hand.Hand, dealer card.Card, m mode.Mode) Action {
	if CanSurrender(h, dealer) {
		return Surrender
	}
	return evaluateWithoutSurrender(h, dealer, m)
}

func evaluateWithoutSurrender(h *hand.Hand, dealer card.Card, m mode.Mode) Action {
	if h.IsPair() && m.AllowsSplit() {
		if a, ok := ShouldSplit(h, dealer).Action(); ok {
			return a
		}
	}
	return ShouldDouble(h, dealer)
}

// CanSurrender reports whether the hand should be surrendered: 16 against
// 9, ten or ace, and 15 against ten.
func CanSurrender(h *hand.Hand, dealer card.Card) bool {
	d := dealer.Value()
	switch h.Value() {
	case 16:
		return d >= 9 && d <= 11
	case 15:
		return d == 10
	default:
		return false
	}
}

// ShouldSplit applies the pair table. Hands that are not a pair are never
// split.
func ShouldSplit(h *hand.Hand, dealer card.Card) SplitAdvice {
	if h.Len() < 2 || h.Card(0).Value() != h.Card(1).Value() {
		return DontSplit
	}
	d := dealer.Value()

	switch h.Card(0).Value() {
	case 11, 8:
		return SplitPair
	case 10, 5:
		return DontSplit
	case 9:
		if d == 7 || d == 10 || d == 11 {
			return DontSplit
		}
		return SplitPair
	case 7:
		if d <= 7 {
			return SplitPair
		}
		return DontSplit
	case 6:
		if d == 2 {
			return SplitIfDASAllowed
		}
		if d > 2 && d < 7 {
			return SplitPair
		}
		return DontSplit
	case 4:
		if d == 5 || d == 6 {
			return SplitIfDASAllowed
		}
		return DontSplit
	case 3, 2:
		if d == 2 || d == 3 {
			return SplitIfDASAllowed
		}
		if d > 3 && d <= 7 {
			return SplitPair
		}
		return DontSplit
	default:
		return DontSplit
	}
}

// partnerOrder is the order in which the soft table looks for the card
// accompanying an ace
var partnerOrder = []card.Rank{
	card.Nine, card.Eight, card.Seven, card.Six, card.Five, card.Four, card.Three, card.Two,
}

// softPartner finds the non-ace card the soft table is keyed by. Only two
// card hands are well defined; with more cards the highest partner rank
// present wins.
func softPartner(h *hand.Hand) (card.Rank, bool) {
	if !h.HasAce() {
		return 0, false
	}
	for _, r := range partnerOrder {
		if h.Contains(r) {
			return r, true
		}
	}
	return 0, false
}

// ShouldDouble resolves the hand to double, stand or hit. Hands with an ace
// and a 2 to 9 use the soft table; everything else, including A-A and
// A-ten, is played on its total.
func ShouldDouble(h *hand.Hand, dealer card.Card) Action {
	d := dealer.Value()

	if partner, ok := softPartner(h); ok {
		switch partner {
		case card.Nine:
			return Stand
		case card.Eight:
			if d == 6 {
				return DoubleOrStand
			}
			return Stand
		case card.Seven:
			if d < 7 {
				return DoubleOrStand
			}
			if d <= 8 {
				return Stand
			}
			return Hit
		case card.Six:
			if d >= 3 && d < 7 {
				return Double
			}
			return Hit
		case card.Five, card.Four:
			if d >= 4 && d < 7 {
				return Double
			}
			return Hit
		case card.Three, card.Two:
			if d >= 5 && d < 7 {
				return Double
			}
			return Hit
		}
	}

	v := h.Value()
	switch {
	case v >= 17:
		return Stand
	case v >= 13:
		if d <= 6 {
			return Stand
		}
		return Hit
	case v == 12:
		if d >= 4 && d <= 6 {
			return Stand
		}
		return Hit
	case v == 11:
		return Double
	case v == 10:
		if d <= 9 {
			return Double
		}
		return Hit
	case v == 9:
		if d >= 3 && d <= 6 {
			return Double
		}
		return Hit
	default:
		return Hit
	}
}

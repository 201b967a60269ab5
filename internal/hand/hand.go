// Package hand models a blackjack hand and its derived value.
package hand

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lox/basicstrategy/internal/card"
)

// Hand is an ordered set of cards with its blackjack value and
// classification. Derived fields are recomputed whenever cards are added.
type Hand struct {
	cards  []card.Card
	sorted []card.Card
	value  int
	soft   bool
	pair   bool
}

// New creates a hand from one or more cards. Passing no cards is a
// programming error and panics.
func New(cards ...card.Card) *Hand {
	if len(cards) == 0 {
		panic("hand: New called with no cards")
	}
	h := &Hand{cards: slices.Clone(cards)}
	h.recompute()
	return h
}

// AddCards appends cards to the hand and recomputes its value
func (h *Hand) AddCards(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
	h.recompute()
}

func (h *Hand) recompute() {
	h.sorted = slices.Clone(h.cards)
	slices.SortStableFunc(h.sorted, func(a, b card.Card) int {
		if c := cmp.Compare(a.Value(), b.Value()); c != 0 {
			return c
		}
		return cmp.Compare(a.Rank, b.Rank)
	})
	h.pair = len(h.cards) == 2 && h.cards[0].Value() == h.cards[1].Value()
	h.value, h.soft = computeValue(h.sorted)
}

// computeValue resolves aces against sorted cards. Aces start at 11. Once the
// naive total busts, the aces (always the tail of the sorted cards) are
// dropped from the sum and added back as a single 11 plus 1 for the rest when
// that leaves more than 11 of headroom, otherwise as 1 each.
func computeValue(sorted []card.Card) (value int, soft bool) {
	naive, aces := 0, 0
	for _, c := range sorted {
		naive += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	if aces == 0 {
		return naive, false
	}
	if naive <= 21 {
		return naive, true
	}

	val := 0
	for _, c := range sorted[:len(sorted)-aces] {
		val += c.Value()
	}
	if 21-val > 11 {
		return val + 11 + aces - 1, true
	}
	return val + aces, false
}

// Cards returns the cards in the order they were dealt
func (h *Hand) Cards() []card.Card {
	return slices.Clone(h.cards)
}

// Card returns the i-th dealt card
func (h *Hand) Card(i int) card.Card {
	return h.cards[i]
}

// Sorted returns the cards ordered by value, then rank
func (h *Hand) Sorted() []card.Card {
	return slices.Clone(h.sorted)
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Value returns the best total of the hand
func (h *Hand) Value() int {
	return h.value
}

// IsPair reports whether the hand is exactly two cards of equal value.
// A ten and a king count as a pair.
func (h *Hand) IsPair() bool {
	return h.pair
}

// IsSoft reports whether an ace is being counted as 11
func (h *Hand) IsSoft() bool {
	return h.soft
}

// IsHard reports whether the hand is neither a pair nor soft
func (h *Hand) IsHard() bool {
	return !h.pair && !h.soft
}

// HasAce reports whether any card is an ace
func (h *Hand) HasAce() bool {
	return h.Contains(card.Ace)
}

// Contains reports whether any card has the given rank
func (h *Hand) Contains(rank card.Rank) bool {
	return slices.ContainsFunc(h.cards, func(c card.Card) bool { return c.Rank == rank })
}

// Ranks returns the ranks in dealt order
func (h *Hand) Ranks() []card.Rank {
	ranks := make([]card.Rank, len(h.cards))
	for i, c := range h.cards {
		ranks[i] = c.Rank
	}
	return ranks
}

// Equal compares hands by their sorted ranks, pair and hard flags and value.
// Suits and dealt order are ignored.
func (h *Hand) Equal(other *Hand) bool {
	if h == nil || other == nil {
		return h == other
	}
	if h.value != other.value || h.pair != other.pair || h.IsHard() != other.IsHard() {
		return false
	}
	return slices.EqualFunc(h.sorted, other.sorted, func(a, b card.Card) bool {
		return a.Rank == b.Rank
	})
}

// String returns the cards as pretty symbols separated by spaces
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " ")
}

// Glyphs returns the unicode playing cards as displayed
func (h *Hand) Glyphs() string {
	var b strings.Builder
	for _, c := range h.cards {
		b.WriteString(c.Glyph())
	}
	return b.String()
}

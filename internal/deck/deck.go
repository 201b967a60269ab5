package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/basicstrategy/internal/card"
	"github.com/lox/basicstrategy/internal/hand"
)

// ErrEmptyDeck is returned when a deck is built from no cards
var ErrEmptyDeck = errors.New("deck has no cards")

// Deck is a shoe that never runs out: when a draw asks for more cards than
// remain, fresh permutations of the full set are appended to the remainder.
// A Deck is not safe for concurrent use.
type Deck struct {
	cards []card.Card // full set
	cur   []card.Card // current draw order
	rng   *rand.Rand
}

// New creates a deck over the given cards with an initial shuffle
func New(cards []card.Card, rng *rand.Rand) (*Deck, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}
	if rng == nil {
		return nil, fmt.Errorf("deck: nil random source")
	}
	d := &Deck{
		cards: slices.Clone(cards),
		rng:   rng,
	}
	d.cur = d.permutation()
	return d, nil
}

// NewStandard creates a shuffled 52 card deck
func NewStandard(rng *rand.Rand) *Deck {
	d, err := New(card.Standard(), rng)
	if err != nil {
		panic(err)
	}
	return d
}

// permutation returns a freshly shuffled copy of the full set
func (d *Deck) permutation() []card.Card {
	perm := slices.Clone(d.cards)
	d.rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// Draw removes n cards from the front of the draw order, reshuffling the
// full set onto the remainder as many times as needed. n must be positive.
func (d *Deck) Draw(n int) []card.Card {
	if n <= 0 {
		panic(fmt.Sprintf("deck: draw count must be positive, got %d", n))
	}
	for len(d.cur) < n {
		d.cur = append(d.cur, d.permutation()...)
	}
	drawn := slices.Clone(d.cur[:n])
	d.cur = d.cur[n:]
	return drawn
}

// DrawToHand draws n cards. With a target hand the cards are added to it and
// the same hand is returned; otherwise a new hand is built.
func (d *Deck) DrawToHand(target *hand.Hand, n int) *hand.Hand {
	drawn := d.Draw(n)
	if target == nil {
		return hand.New(drawn...)
	}
	target.AddCards(drawn...)
	return target
}

// Peek returns up to n upcoming cards without drawing them
func (d *Deck) Peek(n int) []card.Card {
	n = max(0, min(n, len(d.cur)))
	return slices.Clone(d.cur[:n])
}

// Remaining returns the number of cards left before the next reshuffle
func (d *Deck) Remaining() int {
	return len(d.cur)
}

// Size returns the number of cards in the full set
func (d *Deck) Size() int {
	return len(d.cards)
}

// Reset discards the current order and reshuffles the full set
func (d *Deck) Reset() {
	d.cur = d.permutation()
}

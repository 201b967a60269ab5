package deck

import (
	rand "math/rand/v2"

	"github.com/lox/basicstrategy/internal/card"
	"github.com/lox/basicstrategy/internal/hand"
	"github.com/lox/basicstrategy/internal/mode"
)

var (
	fullSet    = card.Standard()
	noAceSet   = card.Set(card.Suits(), card.RankRange(card.Two, card.King))
	lowRankSet = card.Set(card.Suits(), card.RankRange(card.Two, card.Nine))
	softAce    = card.Card{Suit: card.Spades, Rank: card.Ace, FaceUp: true}
)

// Deal is one training round: the player's two cards and the dealer's
// upcard and hole card
type Deal struct {
	Player [2]card.Card
	Dealer [2]card.Card
}

// Cards returns the deal as [player1, player2, dealerUp, dealerHole]
func (d Deal) Cards() []card.Card {
	return []card.Card{d.Player[0], d.Player[1], d.Dealer[0], d.Dealer[1]}
}

// PlayerHand builds the player's hand
func (d Deal) PlayerHand() *hand.Hand {
	return hand.New(d.Player[:]...)
}

// DealerHand builds the dealer's hand, hole card included
func (d Deal) DealerHand() *hand.Hand {
	return hand.New(d.Dealer[:]...)
}

// Upcard returns the dealer's visible card
func (d Deal) Upcard() card.Card {
	return d.Dealer[0]
}

// DealSolo deals an independent round for a training mode. Each call samples
// without replacement from the mode's card set and shares no state with any
// Deck. The dealer hole card is face down.
//
//   - Split deals the same card twice to the player.
//   - Soft gives the player the ace of spades; everything else is 2 to 9,
//     so the player never holds a blackjack.
//   - Hard deals from a deck without aces.
//   - Basic and Unknown deal from the full deck.
func DealSolo(rng *rand.Rand, m mode.Mode) Deal {
	var cards []card.Card
	switch m {
	case mode.Split:
		s := sample(rng, fullSet, 3)
		cards = []card.Card{s[0], s[0], s[1], s[2]}
	case mode.Soft:
		s := sample(rng, lowRankSet, 3)
		cards = []card.Card{softAce, s[0], s[1], s[2]}
	case mode.Hard:
		cards = sample(rng, noAceSet, 4)
	default: // Basic, Unknown
		cards = sample(rng, fullSet, 4)
	}

	d := Deal{
		Player: [2]card.Card{cards[0], cards[1]},
		Dealer: [2]card.Card{cards[2], cards[3]},
	}
	d.Dealer[1].FaceUp = false
	return d
}

// DealQuick samples the player's two cards and the dealer upcard from the
// full deck, returned as [player1, player2, upcard]
func DealQuick(rng *rand.Rand) [3]card.Card {
	s := sample(rng, fullSet, 3)
	return [3]card.Card{s[0], s[1], s[2]}
}

// sample picks k distinct cards with a partial Fisher-Yates shuffle
func sample(rng *rand.Rand, from []card.Card, k int) []card.Card {
	idx := make([]int, len(from))
	for i := range idx {
		idx[i] = i
	}
	out := make([]card.Card, k)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = from[idx[i]]
	}
	return out
}

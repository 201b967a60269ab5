package card

// Ranks returns every rank from Two to Ace
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Suits returns the four suits
func Suits() []Suit {
	return []Suit{Hearts, Clubs, Spades, Diamonds}
}

// Set builds one face up card for every suit and rank combination, suit-major
func Set(suits []Suit, ranks []Rank) []Card {
	cards := make([]Card, 0, len(suits)*len(ranks))
	for _, s := range suits {
		for _, r := range ranks {
			cards = append(cards, Card{Suit: s, Rank: r, FaceUp: true})
		}
	}
	return cards
}

// Standard returns the 52 card set
func Standard() []Card {
	return Set(Suits(), Ranks())
}

// RankRange returns ranks from lo to hi inclusive
func RankRange(lo, hi Rank) []Rank {
	var ranks []Rank
	for r := lo; r <= hi; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

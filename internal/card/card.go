package card

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRank is returned when a rank is not one of 23456789TJQKA
	ErrInvalidRank = errors.New("invalid rank")
	// ErrInvalidSuit is returned when a suit is not one of shdc
	ErrInvalidSuit = errors.New("invalid suit")
	// ErrInvalidCardString is returned for malformed card codes
	ErrInvalidCardString = errors.New("invalid card string")
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the single letter code of the suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) valid() bool {
	return s >= Spades && s <= Clubs
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single character code of the rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Value returns the blackjack value of the rank. Tens and faces count 10,
// aces count 11.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r)
	}
}

func (r Rank) valid() bool {
	return r >= Two && r <= Ace
}

// Card represents a playing card. FaceUp only affects display.
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// New creates a face up card, validating suit and rank
func New(suit Suit, rank Rank) (Card, error) {
	if !suit.valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, suit)
	}
	if !rank.valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	return Card{Suit: suit, Rank: rank, FaceUp: true}, nil
}

// MustNew is New that panics on invalid input, for literals and tests
func MustNew(suit Suit, rank Rank) Card {
	c, err := New(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the two character code of the card (e.g., "As")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns the rank followed by the suit symbol (e.g., "A♠")
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Value returns the blackjack value of the card
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Turn flips the card over
func (c *Card) Turn() {
	c.FaceUp = !c.FaceUp
}

// Face returns a copy of the card facing the given way
func (c Card) Face(up bool) Card {
	c.FaceUp = up
	return c
}

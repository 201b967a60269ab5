package hand

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/basicstrategy/internal/card"
)

var (
	// ErrEmptyHand is returned when parsing yields no cards
	ErrEmptyHand = errors.New("empty hand")
	// ErrFaceUpMismatch is returned when face up flags do not line up with the cards
	ErrFaceUpMismatch = errors.New("face up flags do not match cards")
)

// CardString returns the concatenated card codes (e.g., "KcAs")
func (h *Hand) CardString() string {
	var b strings.Builder
	for _, c := range h.cards {
		b.WriteString(c.String())
	}
	return b.String()
}

// FaceUpString returns one '1' or '0' per card
func (h *Hand) FaceUpString() string {
	var b strings.Builder
	for _, c := range h.cards {
		if c.FaceUp {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Parse builds a hand from concatenated two character codes and a parallel
// string of '0'/'1' face up flags. An empty flag string means every card is
// face up.
func Parse(codes, faceUp string) (*Hand, error) {
	codes = strings.ReplaceAll(codes, " ", "")
	if len(codes)%2 != 0 {
		return nil, fmt.Errorf("%w: length %d is odd", card.ErrInvalidCardString, len(codes))
	}

	tokens := make([]string, 0, len(codes)/2)
	for i := 0; i < len(codes); i += 2 {
		tokens = append(tokens, codes[i:i+2])
	}

	var flags []bool
	if faceUp != "" {
		flags = make([]bool, len(faceUp))
		for i := 0; i < len(faceUp); i++ {
			switch faceUp[i] {
			case '1':
				flags[i] = true
			case '0':
				flags[i] = false
			default:
				return nil, fmt.Errorf("%w: flag %q at position %d", ErrFaceUpMismatch, faceUp[i], i)
			}
		}
	}
	return FromCodes(tokens, flags)
}

// FromCodes builds a hand from pre-split card codes. A nil flags slice means
// every card is face up.
func FromCodes(codes []string, faceUp []bool) (*Hand, error) {
	if len(codes) == 0 {
		return nil, ErrEmptyHand
	}
	if faceUp != nil && len(faceUp) != len(codes) {
		return nil, fmt.Errorf("%w: %d flags for %d cards", ErrFaceUpMismatch, len(faceUp), len(codes))
	}

	cards := make([]card.Card, len(codes))
	for i, code := range codes {
		c, err := card.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		if faceUp != nil {
			c.FaceUp = faceUp[i]
		}
		cards[i] = c
	}
	return New(cards...), nil
}

// MustParse parses face up cards and panics on error (for tests)
func MustParse(codes string) *Hand {
	h, err := Parse(codes, "")
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", codes, err))
	}
	return h
}

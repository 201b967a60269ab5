package card

import "fmt"

// ParseRank parses a rank character. Letters are case insensitive.
func ParseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '9':
		return Nine, nil
	case '8':
		return Eight, nil
	case '7':
		return Seven, nil
	case '6':
		return Six, nil
	case '5':
		return Five, nil
	case '4':
		return Four, nil
	case '3':
		return Three, nil
	case '2':
		return Two, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, c)
	}
}

// ParseSuit parses a suit character. Case insensitive.
func ParseSuit(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, c)
	}
}

// Parse parses a two character code, rank first then suit (e.g., "Kc").
// The returned card is face up.
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be 2 characters", ErrInvalidCardString, s)
	}
	rank, err := ParseRank(s[0])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %w", ErrInvalidCardString, s, err)
	}
	suit, err := ParseSuit(s[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %w", ErrInvalidCardString, s, err)
	}
	return Card{Suit: suit, Rank: rank, FaceUp: true}, nil
}

// ParseFaceDown parses a card code and returns it face down
func ParseFaceDown(s string) (Card, error) {
	c, err := Parse(s)
	if err != nil {
		return Card{}, err
	}
	c.FaceUp = false
	return c, nil
}

// MustParse parses a card and panics on error (for tests)
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card '%s': %v", s, err))
	}
	return c
}

// MarshalText implements encoding.TextMarshaler
func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Rank) UnmarshalText(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidRank, b)
	}
	parsed, err := ParseRank(b[0])
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

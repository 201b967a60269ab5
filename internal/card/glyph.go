package card

// Back is the unicode card back
const Back = '\U0001F0A0'

var suitBase = map[Suit]rune{
	Spades:   0x1F0A0,
	Hearts:   0x1F0B0,
	Diamonds: 0x1F0C0,
	Clubs:    0x1F0D0,
}

// The unicode block reserves 0xC for the knight, so queen and king skip it.
var rankOffset = map[Rank]rune{
	Ace:   0x1,
	Two:   0x2,
	Three: 0x3,
	Four:  0x4,
	Five:  0x5,
	Six:   0x6,
	Seven: 0x7,
	Eight: 0x8,
	Nine:  0x9,
	Ten:   0xA,
	Jack:  0xB,
	Queen: 0xD,
	King:  0xE,
}

// Front returns the unicode playing card for the card regardless of facing
func (c Card) Front() rune {
	return suitBase[c.Suit] + rankOffset[c.Rank]
}

// Glyph returns the unicode playing card as displayed: the front when face
// up, the back otherwise
func (c Card) Glyph() string {
	if !c.FaceUp {
		return string(Back)
	}
	return string(c.Front())
}

// Package roundid generates identifiers for training rounds: a UUIDv7
// encoded as a 26 character, lexically sortable base32 string.
package roundid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32, as used by TypeID
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Generate creates a new round ID
func Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("failed to generate round id: " + err.Error())
	}
	return Encode(id)
}

// Encode writes the 128 bit id as 26 base32 characters. Two zero bits are
// prepended so the first character is always 0-7.
func Encode(id uuid.UUID) string {
	out := make([]byte, 26)
	for i := range out {
		var v byte
		for b := 0; b < 5; b++ {
			pos := i*5 + b - 2
			v <<= 1
			if pos >= 0 && id[pos/8]&(0x80>>(pos%8)) != 0 {
				v |= 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// Parse decodes a round ID back to its UUID
func Parse(s string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := Validate(s); err != nil {
		return id, err
	}
	for i := 0; i < len(s); i++ {
		v := byte(strings.IndexByte(alphabet, s[i]))
		for b := 0; b < 5; b++ {
			pos := i*5 + b - 2
			if pos >= 0 && v&(0x10>>b) != 0 {
				id[pos/8] |= 0x80 >> (pos % 8)
			}
		}
	}
	return id, nil
}

// Validate checks that s is 26 characters of base32 with a first
// character of 0-7
func Validate(s string) error {
	if len(s) != 26 {
		return fmt.Errorf("round ID must be exactly 26 characters, got %d", len(s))
	}
	if s[0] > '7' {
		return fmt.Errorf("round ID first character must be 0-7, got %c", s[0])
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", s[i], i)
		}
	}
	return nil
}

// Package mode defines the training modes that restrict dealing and gate
// pair splitting.
package mode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a mode name is not recognised
var ErrInvalidMode = errors.New("invalid mode")

// Mode selects which hands are dealt and whether splits are considered
type Mode int

const (
	// Unknown behaves like Basic everywhere it is consumed
	Unknown Mode = iota
	Basic
	Soft
	Hard
	Split
)

// All returns the named modes in display order
func All() []Mode {
	return []Mode{Basic, Soft, Hard, Split}
}

// String returns the mode name as used in config files and flags
func (m Mode) String() string {
	switch m {
	case Basic:
		return "basic"
	case Soft:
		return "soft"
	case Hard:
		return "hard"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// AllowsSplit reports whether split advice is given in this mode. Soft and
// hard drills suppress it so pairs are graded on their totals.
func (m Mode) AllowsSplit() bool {
	switch m {
	case Soft, Hard:
		return false
	default:
		return true
	}
}

// Parse parses a mode name. Empty input means Basic.
func Parse(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "basic":
		return Basic, nil
	case "soft":
		return Soft, nil
	case "hard":
		return Hard, nil
	case "split":
		return Split, nil
	default:
		return Unknown, fmt.Errorf("%w: %q (want basic, soft, hard or split)", ErrInvalidMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(b []byte) error {
	if strings.EqualFold(strings.TrimSpace(string(b)), "unknown") {
		*m = Unknown
		return nil
	}
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

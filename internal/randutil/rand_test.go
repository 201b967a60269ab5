package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSeed(t *testing.T) {
	seed := int64(7)
	assert.Equal(t, int64(7), Seed(&seed))
	assert.NotZero(t, Seed(nil))
}

func TestSplit(t *testing.T) {
	seen := make(map[int64]bool)
	for i := range 8 {
		s := Split(99, i)
		assert.False(t, seen[s])
		seen[s] = true
		assert.Equal(t, s, Split(99, i))
	}
}

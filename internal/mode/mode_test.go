package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"basic", Basic, false},
		{"", Basic, false},
		{"SOFT", Soft, false},
		{" hard ", Hard, false},
		{"split", Split, false},
		{"counting", Unknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMode)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllowsSplit(t *testing.T) {
	assert.True(t, Basic.AllowsSplit())
	assert.True(t, Split.AllowsSplit())
	assert.True(t, Unknown.AllowsSplit())
	assert.False(t, Soft.AllowsSplit())
	assert.False(t, Hard.AllowsSplit())
}

func TestTextRoundTrip(t *testing.T) {
	for _, m := range All() {
		b, err := m.MarshalText()
		require.NoError(t, err)

		var got Mode
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, m, got)
	}

	var m Mode
	assert.Error(t, m.UnmarshalText([]byte("nope")))
}

func TestUnknownTextRoundTrip(t *testing.T) {
	b, err := Unknown.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "unknown", string(b))

	got := Split
	require.NoError(t, got.UnmarshalText(b))
	assert.Equal(t, Unknown, got)

	_, err = Parse("unknown")
	assert.ErrorIs(t, err, ErrInvalidMode, "users cannot select the unknown mode")
}

package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/basicstrategy/internal/card"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		codes   string
		faceUp  string
		value   int
		wantUp  string
		wantErr error
	}{
		{name: "single", codes: "4s", value: 4, wantUp: "1"},
		{name: "three cards", codes: "4s7dKc", value: 21, wantUp: "111"},
		{name: "with flags", codes: "Kc9d", faceUp: "10", value: 19, wantUp: "10"},
		{name: "spaces ignored", codes: "Kc 9d", value: 19, wantUp: "11"},
		{name: "odd length", codes: "AsK", wantErr: card.ErrInvalidCardString},
		{name: "bad token", codes: "AsXx", wantErr: card.ErrInvalidCardString},
		{name: "empty", codes: "", wantErr: ErrEmptyHand},
		{name: "short flags", codes: "AsKd", faceUp: "1", wantErr: ErrFaceUpMismatch},
		{name: "bad flag", codes: "AsKd", faceUp: "1x", wantErr: ErrFaceUpMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, err := Parse(tt.codes, tt.faceUp)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, h.Value())
			assert.Equal(t, tt.wantUp, h.FaceUpString())
		})
	}
}

func TestFromCodes(t *testing.T) {
	t.Parallel()
	h, err := FromCodes([]string{"As", "Td"}, []bool{true, false})
	require.NoError(t, err)
	assert.Equal(t, "AsTd", h.CardString())
	assert.Equal(t, "10", h.FaceUpString())

	_, err = FromCodes([]string{"As", "T"}, nil)
	assert.ErrorIs(t, err, card.ErrInvalidCardString)

	_, err = FromCodes(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyHand)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for _, codes := range []string{"4s", "4s7dKc", "AsAd", "As4sAd", "AsQhAd2h", "8h8c", "AcTs"} {
		t.Run(codes, func(t *testing.T) {
			h := MustParse(codes)
			h.cards[len(h.cards)-1].Turn()

			got, err := Parse(h.CardString(), h.FaceUpString())
			require.NoError(t, err)
			assert.True(t, got.Equal(h))
			assert.Equal(t, h.CardString(), got.CardString())
			assert.Equal(t, h.FaceUpString(), got.FaceUpString())
		})
	}
}

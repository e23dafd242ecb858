package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointValue(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Ace, 11},
		{Two, 2},
		{Seven, 7},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			for _, s := range Suits {
				assert.Equal(t, tt.want, New(tt.rank, s).PointValue())
			}
		})
	}
}

func TestAssetID(t *testing.T) {
	assert.Equal(t, "ace_of_hearts", New(Ace, Hearts).AssetID())
	assert.Equal(t, "10_of_spades", New(Ten, Spades).AssetID())
	assert.Equal(t, "queen_of_diamonds", New(Queen, Diamonds).AssetID())
	assert.Equal(t, "2_of_clubs", New(Two, Clubs).AssetID())
}

func TestParseRoundTrip(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Suits {
		for _, r := range Ranks {
			c := New(r, s)
			id := c.AssetID()
			require.False(t, seen[id], "duplicate asset ID %s", id)
			seen[id] = true

			parsed, err := Parse(id)
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	}
	assert.Len(t, seen, 52)
}

func TestParseIsCaseInsensitive(t *testing.T) {
	c, err := Parse("King_Of_Clubs")
	require.NoError(t, err)
	assert.Equal(t, New(King, Clubs), c)
}

func TestParseRejectsUnknownIDs(t *testing.T) {
	for _, id := range []string{"", "ace", "ace_of_stars", "one_of_hearts", "11_of_spades", "ace_of_hearts_of_clubs"} {
		_, err := Parse(id)
		assert.Error(t, err, id)
	}
}

func TestStringAndShort(t *testing.T) {
	assert.Equal(t, "Ace of Hearts", New(Ace, Hearts).String())
	assert.Equal(t, "10 of Spades", New(Ten, Spades).String())
	assert.Equal(t, "A♥", New(Ace, Hearts).Short())
	assert.Equal(t, "10♠", New(Ten, Spades).Short())
	assert.True(t, New(Two, Diamonds).IsRed())
	assert.False(t, New(Two, Clubs).IsRed())
}

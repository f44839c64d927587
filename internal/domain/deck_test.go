package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/pairs-go/internal/domain"
)

// deterministicRNG returns values from a pre-set sequence.
type deterministicRNG struct {
	values []int
	idx    int
}

func (r *deterministicRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func TestNewDeck_CanonicalOrder(t *testing.T) {
	deck := domain.NewDeck(&deterministicRNG{values: []int{0}})
	require.Equal(t, 52, deck.Len())

	seen := make(map[domain.Card]bool)
	var drawn []domain.Card
	for deck.Len() > 0 {
		c, err := deck.Draw()
		require.NoError(t, err)
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
		drawn = append(drawn, c)
	}

	assert.Equal(t, domain.Card{Rank: domain.Ace, Suit: domain.Spades}, drawn[0])
	assert.Equal(t, domain.Card{Rank: domain.King, Suit: domain.Spades}, drawn[12])
	assert.Equal(t, domain.Card{Rank: domain.Ace, Suit: domain.Hearts}, drawn[13])
	assert.Equal(t, domain.Card{Rank: domain.King, Suit: domain.Clubs}, drawn[51])
}

func TestDeck_DrawRemovesChosenCard(t *testing.T) {
	deck := domain.NewDeck(&deterministicRNG{values: []int{25}})

	c, err := deck.Draw()
	require.NoError(t, err)
	assert.Equal(t, "K♥", c.String())
	assert.Equal(t, 51, deck.Len())

	// Index 25 now holds the card that followed K♥.
	c, err = deck.Draw()
	require.NoError(t, err)
	assert.Equal(t, "A♦", c.String())
}

func TestDeck_DrawEmpty(t *testing.T) {
	deck := domain.NewDeck(domain.NewSeededRNG(7))
	for range 52 {
		_, err := deck.Draw()
		require.NoError(t, err)
	}

	_, err := deck.Draw()
	assert.ErrorIs(t, err, domain.ErrEmptyDeck)
	assert.Zero(t, deck.Len())
}

func TestCard_String(t *testing.T) {
	tests := []struct {
		card domain.Card
		want string
	}{
		{domain.Card{Rank: domain.Ace, Suit: domain.Spades}, "A♠"},
		{domain.Card{Rank: domain.Ten, Suit: domain.Hearts}, "10♥"},
		{domain.Card{Rank: domain.Queen, Suit: domain.Diamonds}, "Q♦"},
		{domain.Card{Rank: domain.Seven, Suit: domain.Clubs}, "7♣"},
		{domain.Card{}, "?♠"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.String())
		})
	}
}

func TestCard_EqualityNeedsRankAndSuit(t *testing.T) {
	as := domain.Card{Rank: domain.Ace, Suit: domain.Spades}
	assert.Equal(t, as, domain.Card{Rank: domain.Ace, Suit: domain.Spades})
	assert.NotEqual(t, as, domain.Card{Rank: domain.Ace, Suit: domain.Hearts})
	assert.NotEqual(t, as, domain.Card{Rank: domain.King, Suit: domain.Spades})
}

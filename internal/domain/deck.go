package domain

import "slices"

// Deck is a standard 52-card deck that deals by uniform random removal.
type Deck struct {
	cards []Card
	rng   RNG
}

// NewDeck returns a full deck in canonical order: suits Spades, Hearts,
// Diamonds, Clubs, and Ace..King within each suit.
func NewDeck(rng RNG) *Deck {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return &Deck{cards: cards, rng: rng}
}

// Draw removes and returns a uniformly random card. The order of the
// remaining cards is preserved.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	i := d.rng.Intn(len(d.cards))
	c := d.cards[i]
	d.cards = slices.Delete(d.cards, i, i+1)
	return c, nil
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

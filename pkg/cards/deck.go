package cards

import (
	"math/rand"

	"cosmossdk.io/errors"
)

// Deck is a standard 52-card deck dealt from the top. It backs the
// random opponent hand in the CLI; the comparison engine never needs it.
type Deck struct {
	cards []Card
	top   int
}

// NewDeck initializes a standard 52-card deck, suit by suit, ranks
// ascending.
func NewDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Spades; suit <= Hearts; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
	return d
}

// Shuffle shuffles the undealt cards using the Fisher-Yates algorithm.
func (d *Deck) Shuffle(r *rand.Rand) {
	remaining := d.cards[d.top:]
	for i := len(remaining) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		remaining[i], remaining[j] = remaining[j], remaining[i]
	}
}

// Remove takes the given cards out of the deck, so a subsequent Draw can
// never produce a card already held elsewhere.
func (d *Deck) Remove(exclude ...Card) {
	kept := d.cards[:0]
	for _, card := range d.cards {
		removed := false
		for _, e := range exclude {
			if card.Equals(e) {
				removed = true
				break
			}
		}
		if !removed {
			kept = append(kept, card)
		}
	}
	d.cards = kept
}

// Draw deals the next n cards from the top of the deck.
func (d *Deck) Draw(n int) ([]Card, error) {
	if d.top+n > len(d.cards) {
		return nil, errors.Wrapf(ErrDeckExhausted, "requested %d, remaining %d", n, d.Remaining())
	}
	drawn := make([]Card, n)
	copy(drawn, d.cards[d.top:d.top+n])
	d.top += n
	return drawn, nil
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.top
}

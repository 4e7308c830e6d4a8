package cards

import (
	"strings"

	"cosmossdk.io/errors"
)

// Rank is a card's face value, encoded 0-12 for 2 through Ace. Ace is
// high; the wheel straight is handled structurally by the hand package.
type Rank int8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit is one of the four card suits. Suits carry no ranking weight.
type Suit int8

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
)

// Mnemonic alphabets, indexed by the Rank/Suit encodings. X is ten.
const (
	rankChars = "23456789XJQKA"
	suitChars = "SCDH"
)

// Valid reports whether the rank is within 2..Ace.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r])
}

// Valid reports whether the suit is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Spades && s <= Hearts
}

func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return string(suitChars[s])
}

// Card is an immutable playing card. Construct through NewCard or
// ParseCard so the rank and suit are always within their domains.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card, failing with ErrInvalidCard when the rank or
// suit is outside its enumeration.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, errors.Wrapf(ErrInvalidCard, "rank=%d suit=%d", rank, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// SameRank reports whether both cards share a rank.
func (c Card) SameRank(other Card) bool {
	return c.Rank == other.Rank
}

// SameSuit reports whether both cards share a suit.
func (c Card) SameSuit(other Card) bool {
	return c.Suit == other.Suit
}

// Equals reports whether both rank and suit match.
func (c Card) Equals(other Card) bool {
	return c.SameRank(other) && c.SameSuit(other)
}

// String renders the two-character mnemonic, e.g. "XC" or "AS".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a two-character mnemonic such as "8C" or "as".
// Parsing is case-insensitive.
func ParseCard(mnemonic string) (Card, error) {
	m := strings.ToUpper(mnemonic)
	if len(m) != 2 {
		return Card{}, errors.Wrapf(ErrInvalidCard, "mnemonic %q", mnemonic)
	}

	rank := Rank(strings.IndexByte(rankChars, m[0]))
	suit := Suit(strings.IndexByte(suitChars, m[1]))
	if rank < 0 || suit < 0 {
		return Card{}, errors.Wrapf(ErrInvalidCard, "mnemonic %q", mnemonic)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a slice of mnemonics, reporting the position of the
// first invalid one.
func ParseCards(mnemonics []string) ([]Card, error) {
	out := make([]Card, len(mnemonics))
	for i, m := range mnemonics {
		card, err := ParseCard(m)
		if err != nil {
			return nil, errors.Wrapf(err, "position %d", i)
		}
		out[i] = card
	}
	return out, nil
}

package hand

import (
	"cosmossdk.io/errors"
)

// Result is the outcome of comparing a hand against another.
type Result int

const (
	Tie Result = iota
	SelfWins
	OtherWins
)

func (r Result) String() string {
	switch r {
	case Tie:
		return "tie"
	case SelfWins:
		return "self wins"
	case OtherWins:
		return "other wins"
	default:
		return "unknown"
	}
}

// Compare decides the showdown between h and other. The ten cards across
// both hands must be pairwise distinct; a card present in both hands is a
// contract violation reported as ErrOverlappingCards.
//
// When categories differ the higher category wins outright. Equal
// straight-family categories compare the top card, which for the wheel
// is the five. All other equal categories compare the signatures
// element by element: the first differing rank decides, and identical
// rank multisets tie regardless of suits.
func (h *Hand) Compare(other *Hand) (Result, error) {
	for _, a := range h.cards {
		for _, b := range other.cards {
			if a.Equals(b) {
				return Tie, errors.Wrapf(ErrOverlappingCards, "%s", a)
			}
		}
	}

	if h.category != other.category {
		if h.category > other.category {
			return SelfWins, nil
		}
		return OtherWins, nil
	}

	if h.category == Straight || h.category == StraightFlush {
		switch {
		case h.cards[0].Rank > other.cards[0].Rank:
			return SelfWins, nil
		case h.cards[0].Rank < other.cards[0].Rank:
			return OtherWins, nil
		default:
			return Tie, nil
		}
	}

	// Equal categories imply equal signature shapes, so the entries
	// line up index for index.
	for i := range h.sig {
		switch {
		case h.sig[i].Rank > other.sig[i].Rank:
			return SelfWins, nil
		case h.sig[i].Rank < other.sig[i].Rank:
			return OtherWins, nil
		}
	}
	return Tie, nil
}

// Package hand classifies five-card poker hands into the nine standard
// categories and decides showdowns between two hands.
//
// Classification and tie-breaking both rest on the hand's frequency
// signature: the list of (count, rank) pairs for the distinct ranks in
// the hand, ordered by count descending and, for equal counts, by rank
// descending. Every category except the straight family maps to exactly
// one signature shape; Straight, Flush, Straight Flush and High Card all
// share [1,1,1,1,1] and are separated by suit and adjacency checks.
package hand

import (
	"sort"
	"strings"

	"cosmossdk.io/errors"

	"github.com/cardroom/showdown/pkg/cards"
)

// Size is the number of cards in a hand.
const Size = 5

// RankCount is one signature entry: how many cards of Rank the hand holds.
type RankCount struct {
	Count int
	Rank  cards.Rank
}

// Hand is an immutable five-card hand. Its cards are sorted by rank
// descending, except the wheel straight which is canonically [5,4,3,2,A],
// and its signature and category are computed once at construction.
type Hand struct {
	cards    [Size]cards.Card
	sig      []RankCount
	category Category
}

// New builds a hand from exactly five pairwise-distinct cards. It fails
// with ErrHandSize or ErrDuplicateCard; the duplicate check runs before
// any other processing.
func New(cc []cards.Card) (*Hand, error) {
	if len(cc) != Size {
		return nil, errors.Wrapf(ErrHandSize, "got %d", len(cc))
	}
	for i := 0; i < len(cc); i++ {
		for j := i + 1; j < len(cc); j++ {
			if cc[i].Equals(cc[j]) {
				return nil, errors.Wrapf(ErrDuplicateCard, "%s", cc[i])
			}
		}
	}

	var h Hand
	copy(h.cards[:], cc)
	sortDescending(h.cards[:])
	normalizeWheel(&h.cards)
	h.sig = signature(h.cards[:])
	h.category = classify(h.cards[:], h.sig)
	return &h, nil
}

// Category returns the classification computed at construction.
func (h *Hand) Category() Category {
	return h.category
}

// Cards returns a copy of the hand's cards in canonical order.
func (h *Hand) Cards() []cards.Card {
	out := make([]cards.Card, Size)
	copy(out, h.cards[:])
	return out
}

// Signature returns a copy of the frequency signature.
func (h *Hand) Signature() []RankCount {
	out := make([]RankCount, len(h.sig))
	copy(out, h.sig)
	return out
}

// String renders the five mnemonics in canonical order, space separated.
func (h *Hand) String() string {
	mnemonics := make([]string, Size)
	for i, c := range h.cards {
		mnemonics[i] = c.String()
	}
	return strings.Join(mnemonics, " ")
}

func sortDescending(cc []cards.Card) {
	sort.SliceStable(cc, func(i, j int) bool {
		return cc[i].Rank > cc[j].Rank
	})
}

// normalizeWheel rewrites A,5,4,3,2 to the canonical 5,4,3,2,A so the
// ace is never treated as the straight's top card.
func normalizeWheel(cc *[Size]cards.Card) {
	if cc[0].Rank != cards.Ace || cc[1].Rank != cards.Five ||
		cc[2].Rank != cards.Four || cc[3].Rank != cards.Three || cc[4].Rank != cards.Two {
		return
	}
	ace := cc[0]
	copy(cc[:Size-1], cc[1:])
	cc[Size-1] = ace
}

// signature groups the cards by rank and orders the (count, rank) pairs
// by count descending, then rank descending.
func signature(cc []cards.Card) []RankCount {
	counts := make(map[cards.Rank]int, Size)
	for _, c := range cc {
		counts[c.Rank]++
	}

	sig := make([]RankCount, 0, len(counts))
	for rank, count := range counts {
		sig = append(sig, RankCount{Count: count, Rank: rank})
	}
	sort.Slice(sig, func(i, j int) bool {
		if sig[i].Count != sig[j].Count {
			return sig[i].Count > sig[j].Count
		}
		return sig[i].Rank > sig[j].Rank
	})
	return sig
}

// isFlush reports whether all five cards share one suit.
func isFlush(cc []cards.Card) bool {
	for _, c := range cc[1:] {
		if !c.SameSuit(cc[0]) {
			return false
		}
	}
	return true
}

// isWheel matches the canonical wheel order produced by normalizeWheel.
func isWheel(cc []cards.Card) bool {
	return cc[0].Rank == cards.Five && cc[1].Rank == cards.Four &&
		cc[2].Rank == cards.Three && cc[3].Rank == cards.Two && cc[4].Rank == cards.Ace
}

// isStraight reports whether the sorted cards form a consecutive
// descending run, or the wheel.
func isStraight(cc []cards.Card) bool {
	if isWheel(cc) {
		return true
	}
	for i := 1; i < len(cc); i++ {
		if cc[i-1].Rank != cc[i].Rank+1 {
			return false
		}
	}
	return true
}

// classify resolves the category in fixed priority order. Higher
// categories are checked first so the shapes sharing the [1,1,1,1,1]
// signature resolve through the flush and straight predicates.
func classify(cc []cards.Card, sig []RankCount) Category {
	flush := isFlush(cc)
	straight := isStraight(cc)

	switch {
	case straight && flush:
		return StraightFlush
	case sig[0].Count == 4:
		return FourOfAKind
	case sig[0].Count == 3 && sig[1].Count == 2:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case sig[0].Count == 3:
		return ThreeOfAKind
	case sig[0].Count == 2 && sig[1].Count == 2:
		return TwoPair
	case sig[0].Count == 2:
		return OnePair
	default:
		return HighCard
	}
}

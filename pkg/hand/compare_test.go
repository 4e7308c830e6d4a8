package hand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare_CategoryOrderingDecides(t *testing.T) {
	tests := []struct {
		name     string
		self     []string
		other    []string
		expected Result
	}{
		{
			name:     "pair beats high card",
			self:     []string{"2S", "2H", "5D", "8C", "KH"},
			other:    []string{"AH", "QD", "8S", "5C", "3H"},
			expected: SelfWins,
		},
		{
			name:     "flush beats straight",
			self:     []string{"2H", "5H", "8H", "JH", "KH"},
			other:    []string{"5D", "6C", "7S", "8S", "9D"},
			expected: SelfWins,
		},
		{
			name:     "full house beats flush",
			self:     []string{"3S", "3C", "3D", "KH", "KS"},
			other:    []string{"2H", "5H", "8H", "JH", "AH"},
			expected: SelfWins,
		},
		{
			name:     "straight flush beats four of a kind",
			self:     []string{"5H", "6H", "7H", "8H", "9H"},
			other:    []string{"AS", "AC", "AD", "AH", "2S"},
			expected: SelfWins,
		},
		{
			name:     "high card loses to two pair",
			self:     []string{"AH", "QD", "8S", "5C", "3H"},
			other:    []string{"4S", "4C", "9D", "9H", "2S"},
			expected: OtherWins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			self := mustHand(t, tt.self...)
			other := mustHand(t, tt.other...)

			result, err := self.Compare(other)
			require.NoError(t, err)
			require.Equal(t, tt.expected, result)

			// Antisymmetry: swapping the hands swaps the outcome.
			swapped, err := other.Compare(self)
			require.NoError(t, err)
			require.Equal(t, flipped(tt.expected), swapped)
		})
	}
}

func TestCompare_SignatureBreaksTies(t *testing.T) {
	tests := []struct {
		name     string
		self     []string
		other    []string
		expected Result
	}{
		{
			name:     "one pair decided by first kicker",
			self:     []string{"8C", "8D", "6S", "4D", "5S"},
			other:    []string{"8S", "7D", "8H", "4S", "5D"},
			expected: OtherWins,
		},
		{
			name:     "higher pair wins before kickers",
			self:     []string{"AS", "AH", "2D", "3C", "4H"},
			other:    []string{"KS", "KD", "AC", "QS", "JH"},
			expected: SelfWins,
		},
		{
			name:     "two pair decided by low pair",
			self:     []string{"9S", "9C", "5D", "5H", "2S"},
			other:    []string{"9D", "9H", "4S", "4C", "2D"},
			expected: SelfWins,
		},
		{
			name:     "full house decided by trips",
			self:     []string{"4S", "4C", "4D", "AH", "AS"},
			other:    []string{"5H", "5D", "5S", "2C", "2H"},
			expected: OtherWins,
		},
		{
			name:     "four of a kind decided by quads",
			self:     []string{"AS", "AC", "AD", "AH", "2S"},
			other:    []string{"KS", "KC", "KD", "KH", "QS"},
			expected: SelfWins,
		},
		{
			name:     "high card decided by last kicker",
			self:     []string{"AH", "KD", "8S", "5C", "3H"},
			other:    []string{"AS", "KC", "8D", "5H", "2C"},
			expected: SelfWins,
		},
		{
			name:     "flush compared rank by rank",
			self:     []string{"2H", "5H", "8H", "JH", "KH"},
			other:    []string{"2S", "5S", "9S", "JS", "KS"},
			expected: OtherWins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			self := mustHand(t, tt.self...)
			other := mustHand(t, tt.other...)
			require.Equal(t, self.Category(), other.Category())

			result, err := self.Compare(other)
			require.NoError(t, err)
			require.Equal(t, tt.expected, result)

			swapped, err := other.Compare(self)
			require.NoError(t, err)
			require.Equal(t, flipped(tt.expected), swapped)
		})
	}
}

func TestCompare_StraightsUseTopCard(t *testing.T) {
	wheel := mustHand(t, "5S", "4D", "3C", "2H", "AC")
	sixHigh := mustHand(t, "6S", "5D", "4C", "3H", "2D")

	require.Equal(t, Straight, wheel.Category())
	require.Equal(t, Straight, sixHigh.Category())

	result, err := wheel.Compare(sixHigh)
	require.NoError(t, err)
	require.Equal(t, OtherWins, result, "six-high straight beats the wheel")

	swapped, err := sixHigh.Compare(wheel)
	require.NoError(t, err)
	require.Equal(t, SelfWins, swapped)
}

func TestCompare_EqualStraightsTie(t *testing.T) {
	tests := []struct {
		name  string
		self  []string
		other []string
	}{
		{
			name:  "nine-high straights",
			self:  []string{"5H", "6D", "7C", "8S", "9H"},
			other: []string{"5C", "6S", "7H", "8D", "9C"},
		},
		{
			name:  "two wheels",
			self:  []string{"5S", "4D", "3C", "2H", "AC"},
			other: []string{"5C", "4H", "3S", "2D", "AD"},
		},
		{
			name:  "straight flushes of equal height",
			self:  []string{"5H", "6H", "7H", "8H", "9H"},
			other: []string{"5C", "6C", "7C", "8C", "9C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			self := mustHand(t, tt.self...)
			other := mustHand(t, tt.other...)

			result, err := self.Compare(other)
			require.NoError(t, err)
			require.Equal(t, Tie, result)
		})
	}
}

func TestCompare_IdenticalRankMultisetsTie(t *testing.T) {
	// Same ranks, disjoint suits: indistinguishable under standard
	// ranking rules, deliberately a tie rather than a suit tiebreak.
	self := mustHand(t, "AS", "KS", "QS", "JS", "9S")
	other := mustHand(t, "AH", "KH", "QH", "JH", "9H")

	result, err := self.Compare(other)
	require.NoError(t, err)
	require.Equal(t, Tie, result)

	swapped, err := other.Compare(self)
	require.NoError(t, err)
	require.Equal(t, Tie, swapped)
}

func TestCompare_OverlappingCards(t *testing.T) {
	self := mustHand(t, "2S", "3S", "4S", "5S", "6S")
	other := mustHand(t, "2S", "7D", "8H", "9C", "XS")

	_, err := self.Compare(other)
	require.ErrorIs(t, err, ErrOverlappingCards)

	// An identical-cards copy overlaps on every card.
	copySelf := mustHand(t, "2S", "3S", "4S", "5S", "6S")
	_, err = self.Compare(copySelf)
	require.ErrorIs(t, err, ErrOverlappingCards)
}

func flipped(r Result) Result {
	switch r {
	case SelfWins:
		return OtherWins
	case OtherWins:
		return SelfWins
	default:
		return Tie
	}
}

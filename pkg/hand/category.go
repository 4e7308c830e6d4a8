package hand

// Category is the classification of a five-card hand. The enum order is
// the sole determinant of which hand wins when categories differ.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the display name of the category.
func (c Category) String() string {
	names := []string{
		"High Card",
		"One Pair",
		"Two Pair",
		"Three of a Kind",
		"Straight",
		"Flush",
		"Full House",
		"Four of a Kind",
		"Straight Flush",
	}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

package hand

import (
	"cosmossdk.io/errors"
)

// hand package sentinel errors. All of them signal a caller bug, not a
// transient condition.
var (
	ErrHandSize         = errors.Register("hand", 2, "a hand holds exactly five cards")
	ErrDuplicateCard    = errors.Register("hand", 3, "duplicate card within one hand")
	ErrOverlappingCards = errors.Register("hand", 4, "card appears in both hands")
)

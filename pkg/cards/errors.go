package cards

import (
	"cosmossdk.io/errors"
)

// cards package sentinel errors
var (
	ErrInvalidCard   = errors.Register("cards", 2, "rank or suit outside its valid domain")
	ErrDeckExhausted = errors.Register("cards", 3, "not enough cards left in the deck")
)

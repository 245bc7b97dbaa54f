package poker

import "errors"

var (
	// ErrInvalidCardCount is returned when a hand does not have the number of
	// cards an operation requires.
	ErrInvalidCardCount = errors.New("invalid card count")
	// ErrDuplicateCard is returned when the same rank and suit appear twice.
	ErrDuplicateCard = errors.New("duplicate card")
	// ErrUnparseableCard is returned for a bad card text form or an
	// out-of-range rank or suit.
	ErrUnparseableCard = errors.New("unparseable card")
	// ErrInsufficientCandidates means the best-hand selector asked for more
	// cards than were available. It indicates a bug in the selector.
	ErrInsufficientCandidates = errors.New("insufficient candidate cards")
)

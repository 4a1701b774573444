package poker

import "errors"

var (
	// ErrInvalidCard is returned when card text cannot be parsed.
	ErrInvalidCard = errors.New("invalid card")

	// ErrInvalidArity is returned when the evaluator receives the wrong number
	// of cards, or the same card more than once.
	ErrInvalidArity = errors.New("invalid card count")

	// ErrInsufficientCards is returned when hole and board cards total fewer than five.
	ErrInsufficientCards = errors.New("insufficient cards")

	// ErrDuplicateCard is returned when a card appears twice in the same deal.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrBoardFull is returned when a sixth card is added to a board.
	ErrBoardFull = errors.New("board already has five cards")
)

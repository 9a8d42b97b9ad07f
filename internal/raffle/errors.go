package raffle

import "errors"

var (
	// ErrInvalidArgument is returned for a negative winner count.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicateInput is returned when a participant appears more than once.
	ErrDuplicateInput = errors.New("duplicate participant")
	// ErrInsufficientParticipants is returned when winners are requested from an empty pool.
	ErrInsufficientParticipants = errors.New("no participants to draw from")
)

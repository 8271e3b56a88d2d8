package core

import (
	"errors"
)

// Sentinel business errors. They signal a refused command, not a fault:
// callers distinguish them with errors.Is and must not retry them.
var (
	// ErrUnknownBook is returned when a command references a book that is not in the catalog.
	ErrUnknownBook = errors.New("book is not in the catalog")

	// ErrUnknownLoan is returned when a command references a loan that was never requested.
	ErrUnknownLoan = errors.New("loan does not exist")

	// ErrLimitExceeded is returned when a user already holds the maximum number of active loans.
	ErrLimitExceeded = errors.New("user has reached the active loan limit")

	// ErrOutOfStock is returned when no copy of the requested book is available.
	ErrOutOfStock = errors.New("no copy of the book is available")

	// ErrInvalidTransition is returned when a loan is not in a state the command may act on.
	ErrInvalidTransition = errors.New("loan state does not allow this transition")
)

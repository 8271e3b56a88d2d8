package core

import (
	"time"
)

// Alias types and helpers instead of full value objects ...

// BookIDString represents a book identifier
type BookIDString = string

// UserIDString represents a user identifier
type UserIDString = string

// LoanIDString represents a loan identifier
type LoanIDString = string

// ISBNString represents an ISBN identifier
type ISBNString = string

// OccurredAtTS represents when an event occurred
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

package core

import (
	"time"

	"github.com/google/uuid"
)

// LoanRequestedEventType is the event type identifier.
const LoanRequestedEventType = "LoanRequested"

// LoanRequested represents when a user asks to borrow a book. The loan starts
// in Requested state; no copy is reserved yet.
type LoanRequested struct {
	EventType  string
	LoanID     LoanIDString
	BookID     BookIDString
	UserID     UserIDString
	OccurredAt OccurredAtTS
}

// BuildLoanRequested creates a new LoanRequested event.
func BuildLoanRequested(loanID uuid.UUID, bookID uuid.UUID, userID uuid.UUID, occurredAt time.Time) LoanRequested {
	return LoanRequested{
		EventType:  LoanRequestedEventType,
		LoanID:     loanID.String(),
		BookID:     bookID.String(),
		UserID:     userID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LoanRequested) IsEventType() string {
	return LoanRequestedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LoanRequested) HasOccurredAt() time.Time {
	return e.OccurredAt
}

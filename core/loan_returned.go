package core

import (
	"time"

	"github.com/google/uuid"
)

// LoanReturnedEventType is the event type identifier.
const LoanReturnedEventType = "LoanReturned"

// LoanReturned represents when a borrowed copy comes back. It carries the
// fine assessed at return time, zero when the loan was on time.
type LoanReturned struct {
	EventType  string
	LoanID     LoanIDString
	BookID     BookIDString
	UserID     UserIDString
	Fine       float64
	OccurredAt OccurredAtTS
}

// BuildLoanReturned creates a new LoanReturned event.
func BuildLoanReturned(
	loanID uuid.UUID,
	bookID uuid.UUID,
	userID uuid.UUID,
	fine float64,
	occurredAt time.Time,
) LoanReturned {

	return LoanReturned{
		EventType:  LoanReturnedEventType,
		LoanID:     loanID.String(),
		BookID:     bookID.String(),
		UserID:     userID.String(),
		Fine:       fine,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LoanReturned) IsEventType() string {
	return LoanReturnedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LoanReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

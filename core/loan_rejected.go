package core

import (
	"time"

	"github.com/google/uuid"
)

// LoanRejectedEventType is the event type identifier.
const LoanRejectedEventType = "LoanRejected"

// LoanRejected represents when a requested loan is turned down. The loan is
// discarded; inventory is untouched.
type LoanRejected struct {
	EventType  string
	LoanID     LoanIDString
	BookID     BookIDString
	UserID     UserIDString
	Reason     string
	OccurredAt OccurredAtTS
}

// BuildLoanRejected creates a new LoanRejected event.
func BuildLoanRejected(
	loanID uuid.UUID,
	bookID uuid.UUID,
	userID uuid.UUID,
	reason string,
	occurredAt time.Time,
) LoanRejected {

	return LoanRejected{
		EventType:  LoanRejectedEventType,
		LoanID:     loanID.String(),
		BookID:     bookID.String(),
		UserID:     userID.String(),
		Reason:     reason,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LoanRejected) IsEventType() string {
	return LoanRejectedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LoanRejected) HasOccurredAt() time.Time {
	return e.OccurredAt
}

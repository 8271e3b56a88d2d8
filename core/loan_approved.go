package core

import (
	"time"

	"github.com/google/uuid"
)

// LoanApprovedEventType is the event type identifier.
const LoanApprovedEventType = "LoanApproved"

// LoanApproved represents when a requested loan is approved and a copy is
// handed out. It carries the due date; only approved loans have one.
type LoanApproved struct {
	EventType  string
	LoanID     LoanIDString
	BookID     BookIDString
	UserID     UserIDString
	DueDate    time.Time
	OccurredAt OccurredAtTS
}

// BuildLoanApproved creates a new LoanApproved event.
func BuildLoanApproved(
	loanID uuid.UUID,
	bookID uuid.UUID,
	userID uuid.UUID,
	dueDate time.Time,
	occurredAt time.Time,
) LoanApproved {

	return LoanApproved{
		EventType:  LoanApprovedEventType,
		LoanID:     loanID.String(),
		BookID:     bookID.String(),
		UserID:     userID.String(),
		DueDate:    ToOccurredAt(dueDate),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LoanApproved) IsEventType() string {
	return LoanApprovedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LoanApproved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

package core

import (
	"time"

	"github.com/google/uuid"
)

// LoanMarkedOverdueEventType is the event type identifier.
const LoanMarkedOverdueEventType = "LoanMarkedOverdue"

// LoanMarkedOverdue represents the explicit reclassification of an issued
// loan past its due date. Reports derive overdue-ness from the due date
// regardless; this event exists for batch reclassification jobs.
type LoanMarkedOverdue struct {
	EventType  string
	LoanID     LoanIDString
	BookID     BookIDString
	UserID     UserIDString
	OccurredAt OccurredAtTS
}

// BuildLoanMarkedOverdue creates a new LoanMarkedOverdue event.
func BuildLoanMarkedOverdue(loanID uuid.UUID, bookID uuid.UUID, userID uuid.UUID, occurredAt time.Time) LoanMarkedOverdue {
	return LoanMarkedOverdue{
		EventType:  LoanMarkedOverdueEventType,
		LoanID:     loanID.String(),
		BookID:     bookID.String(),
		UserID:     userID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LoanMarkedOverdue) IsEventType() string {
	return LoanMarkedOverdueEventType
}

// HasOccurredAt returns when this event occurred.
func (e LoanMarkedOverdue) HasOccurredAt() time.Time {
	return e.OccurredAt
}

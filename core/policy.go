package core

import (
	"time"
)

// Default policy values.
const (
	DefaultMaxActiveLoansPerUser = 3
	DefaultFinePerDayOverdue     = 2.0
	DefaultLoanPeriodDays        = 14
)

// Policy holds the borrowing rules. It is loaded once at process start and
// treated as immutable afterwards.
type Policy struct {
	MaxActiveLoansPerUser int
	FinePerDayOverdue     float64
	LoanPeriodDays        int
}

// DefaultPolicy returns the standard borrowing policy.
func DefaultPolicy() Policy {
	return Policy{
		MaxActiveLoansPerUser: DefaultMaxActiveLoansPerUser,
		FinePerDayOverdue:     DefaultFinePerDayOverdue,
		LoanPeriodDays:        DefaultLoanPeriodDays,
	}
}

// DueDateFor computes the due date for a loan approved at the given time.
func (p Policy) DueDateFor(approvedAt time.Time) time.Time {
	return ToOccurredAt(approvedAt).AddDate(0, 0, p.LoanPeriodDays)
}

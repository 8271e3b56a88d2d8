package core

import (
	"time"
)

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

// Loan lifecycle states. Requested → Issued → (Overdue) → Returned, or
// Requested → Rejected. There is no other path.
const (
	LoanStatusRequested LoanStatus = "Requested"
	LoanStatusIssued    LoanStatus = "Issued"
	LoanStatusOverdue   LoanStatus = "Overdue"
	LoanStatusReturned  LoanStatus = "Returned"
	LoanStatusRejected  LoanStatus = "Rejected"
)

// Loan is the current state of one loan, folded from its event history.
// DueDate is zero until the loan is approved; ReturnedAt and Fine are zero
// until it is returned.
type Loan struct {
	LoanID      LoanIDString
	BookID      BookIDString
	UserID      UserIDString
	RequestedAt time.Time
	DueDate     time.Time
	ReturnedAt  time.Time
	Fine        float64
	Status      LoanStatus
}

// IsActive reports whether the loan holds a copy (Issued or Overdue).
func (l Loan) IsActive() bool {
	return l.Status == LoanStatusIssued || l.Status == LoanStatusOverdue
}

// IsOverdueAt derives overdue-ness from the due date: an active loan whose
// due date lies strictly before now. This derivation is authoritative for
// reporting; the persisted Overdue status may lag behind it.
func (l Loan) IsOverdueAt(now time.Time) bool {
	return l.IsActive() && !l.DueDate.IsZero() && l.DueDate.Before(now)
}

// ProjectLoan folds the history into the state of one loan.
// The second return value is false when the loan was never requested.
func ProjectLoan(history DomainEvents, loanID LoanIDString) (Loan, bool) {
	loan := Loan{}
	found := false

	for _, event := range history {
		switch e := event.(type) {
		case LoanRequested:
			if e.LoanID != loanID {
				continue
			}
			loan = Loan{
				LoanID:      e.LoanID,
				BookID:      e.BookID,
				UserID:      e.UserID,
				RequestedAt: e.OccurredAt,
				Status:      LoanStatusRequested,
			}
			found = true

		case LoanApproved:
			if e.LoanID != loanID {
				continue
			}
			loan.DueDate = e.DueDate
			loan.Status = LoanStatusIssued

		case LoanMarkedOverdue:
			if e.LoanID != loanID {
				continue
			}
			loan.Status = LoanStatusOverdue

		case LoanReturned:
			if e.LoanID != loanID {
				continue
			}
			loan.ReturnedAt = e.OccurredAt
			loan.Fine = e.Fine
			loan.Status = LoanStatusReturned

		case LoanRejected:
			if e.LoanID != loanID {
				continue
			}
			loan.Status = LoanStatusRejected
		}
	}

	return loan, found
}

// ProjectUserLoans folds the history into the loans of one user, in request order.
func ProjectUserLoans(history DomainEvents, userID UserIDString) []Loan {
	byLoanID := make(map[LoanIDString]int)
	loans := make([]Loan, 0)

	for _, event := range history {
		switch e := event.(type) {
		case LoanRequested:
			if e.UserID != userID {
				continue
			}
			byLoanID[e.LoanID] = len(loans)
			loans = append(loans, Loan{
				LoanID:      e.LoanID,
				BookID:      e.BookID,
				UserID:      e.UserID,
				RequestedAt: e.OccurredAt,
				Status:      LoanStatusRequested,
			})

		case LoanApproved:
			if idx, ok := byLoanID[e.LoanID]; ok {
				loans[idx].DueDate = e.DueDate
				loans[idx].Status = LoanStatusIssued
			}

		case LoanMarkedOverdue:
			if idx, ok := byLoanID[e.LoanID]; ok {
				loans[idx].Status = LoanStatusOverdue
			}

		case LoanReturned:
			if idx, ok := byLoanID[e.LoanID]; ok {
				loans[idx].ReturnedAt = e.OccurredAt
				loans[idx].Fine = e.Fine
				loans[idx].Status = LoanStatusReturned
			}

		case LoanRejected:
			if idx, ok := byLoanID[e.LoanID]; ok {
				loans[idx].Status = LoanStatusRejected
			}
		}
	}

	return loans
}

// CountActiveLoans counts the loans of one user currently holding a copy.
func CountActiveLoans(history DomainEvents, userID UserIDString) int {
	active := 0
	for _, loan := range ProjectUserLoans(history, userID) {
		if loan.IsActive() {
			active++
		}
	}

	return active
}

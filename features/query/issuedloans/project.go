package issuedloans

import (
	"slices"
	"time"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// Project implements the query logic to list every loan currently out.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All loan events in the system
//	WHEN: IssuedLoans query is executed
//	THEN: IssuedLoans struct is returned, sorted by issue time (oldest first)
//	INCLUDES: Loans in status Issued or Overdue
//	EXCLUDES: Requested, rejected and returned loans
func Project(history core.DomainEvents, maxSequence journal.SequenceNumber, generatedAt time.Time) IssuedLoans {
	issuedAt := make(map[core.LoanIDString]time.Time)
	active := make(map[core.LoanIDString]*LoanInfo)

	for _, event := range history {
		switch e := event.(type) {
		case core.LoanApproved:
			issuedAt[e.LoanID] = e.OccurredAt
			active[e.LoanID] = &LoanInfo{
				LoanID:   e.LoanID,
				BookID:   e.BookID,
				UserID:   e.UserID,
				IssuedAt: e.OccurredAt,
				DueDate:  e.DueDate,
				Status:   core.LoanStatusIssued,
			}

		case core.LoanMarkedOverdue:
			if info := active[e.LoanID]; info != nil {
				info.Status = core.LoanStatusOverdue
			}

		case core.LoanReturned:
			delete(active, e.LoanID)
		}
	}

	loans := make([]LoanInfo, 0, len(active))
	for _, infoPtr := range active {
		loans = append(loans, *infoPtr)
	}
	slices.SortFunc(loans, func(a, b LoanInfo) int {
		return a.IssuedAt.Compare(b.IssuedAt)
	})

	return IssuedLoans{
		Loans:          loans,
		Count:          len(loans),
		SequenceNumber: maxSequence,
		GeneratedAt:    generatedAt,
	}
}

// BuildEventScope creates the scope selecting the loan lifecycle events
// relevant for this query.
func BuildEventScope() journal.Scope {
	return journal.ScopeFor(
		core.LoanApprovedEventType,
		core.LoanMarkedOverdueEventType,
		core.LoanReturnedEventType,
	)
}

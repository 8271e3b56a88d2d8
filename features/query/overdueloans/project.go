package overdueloans

import (
	"slices"
	"time"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// Project implements the query logic to list overdue loans as of the query's
// reference time. This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All loan events in the system
//	WHEN: OverdueLoans query is executed
//	THEN: OverdueLoans struct is returned, most overdue first
//	INCLUDES: Active loans whose due date lies strictly before AsOf,
//	          regardless of whether they were already reclassified Overdue
//	EXCLUDES: Returned loans, even when they were returned late
func Project(
	history core.DomainEvents,
	query Query,
	policy core.Policy,
	maxSequence journal.SequenceNumber,
	generatedAt time.Time,
) OverdueLoans {
	active := make(map[core.LoanIDString]core.LoanApproved)

	for _, event := range history {
		switch e := event.(type) {
		case core.LoanApproved:
			active[e.LoanID] = e

		case core.LoanReturned:
			delete(active, e.LoanID)
		}
	}

	loans := make([]OverdueLoanInfo, 0)
	for _, approved := range active {
		if !approved.DueDate.Before(query.AsOf) {
			continue
		}

		loans = append(loans, OverdueLoanInfo{
			LoanID:      approved.LoanID,
			BookID:      approved.BookID,
			UserID:      approved.UserID,
			DueDate:     approved.DueDate,
			DaysOverdue: core.DaysOverdue(approved.DueDate, query.AsOf),
			AccruedFine: core.CalculateFine(approved.DueDate, query.AsOf, policy.FinePerDayOverdue),
		})
	}

	slices.SortFunc(loans, func(a, b OverdueLoanInfo) int {
		if c := a.DueDate.Compare(b.DueDate); c != 0 {
			return c
		}
		if a.LoanID < b.LoanID {
			return -1
		}
		if a.LoanID > b.LoanID {
			return 1
		}
		return 0
	})

	return OverdueLoans{
		AsOf:           query.AsOf,
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
		core.LoanReturnedEventType,
	)
}

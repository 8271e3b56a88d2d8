package userloanhistory

import (
	"time"

	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// Project implements the query logic to list one user's loans in request
// order. This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: A user with UserID
//	WHEN: UserLoanHistory query is executed
//	THEN: UserLoanHistory struct is returned with the user's loans,
//	      oldest request first
//	INCLUDES: Loans in every lifecycle state, rejected and returned included
func Project(
	history core.DomainEvents,
	query Query,
	maxSequence journal.SequenceNumber,
	generatedAt time.Time,
) UserLoanHistory {
	userID := query.UserID.String()
	loans := core.ProjectUserLoans(history, userID)

	return UserLoanHistory{
		UserID:         userID,
		Loans:          loans,
		Count:          len(loans),
		SequenceNumber: maxSequence,
		GeneratedAt:    generatedAt,
	}
}

// BuildEventScope creates the scope selecting this user's loan events.
func BuildEventScope(userID uuid.UUID) journal.Scope {
	return journal.ScopeFor(
		core.LoanRequestedEventType,
		core.LoanApprovedEventType,
		core.LoanRejectedEventType,
		core.LoanReturnedEventType,
		core.LoanMarkedOverdueEventType,
	).AnyKeyOf(
		journal.K(journal.UserIDKey, userID.String()),
	)
}

package requestloan

import (
	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// Decide implements the business logic for requesting a loan.
// Pure function: history plus command in, decision out.
//
// Business rules:
//
//	GIVEN: A book with BookID and a user with UserID
//	WHEN: RequestLoan command is received
//	THEN: LoanRequested event is generated, loan starts in Requested state
//	ERROR: ErrUnknownBook if the book was never added or was removed
//	ERROR: ErrLimitExceeded if the user already holds the maximum number of active loans
//	ERROR: ErrInvalidTransition if the loan id is already taken by a different request
//	IDEMPOTENCY: repeating an identical request generates no event
func Decide(history core.DomainEvents, command Command, policy core.Policy) core.DecisionResult {
	loanID := command.LoanID.String()
	bookID := command.BookID.String()
	userID := command.UserID.String()

	if loan, found := core.ProjectLoan(history, loanID); found {
		if loan.BookID == bookID && loan.UserID == userID && loan.Status == core.LoanStatusRequested {
			return core.IdempotentDecision()
		}

		return core.ErrorDecision(core.ErrInvalidTransition)
	}

	if _, found := core.ProjectBook(history, bookID); !found {
		return core.ErrorDecision(core.ErrUnknownBook)
	}

	if core.CountActiveLoans(history, userID) >= policy.MaxActiveLoansPerUser {
		return core.ErrorDecision(core.ErrLimitExceeded)
	}

	return core.SuccessDecision(
		core.BuildLoanRequested(command.LoanID, command.BookID, command.UserID, command.OccurredAt),
	)
}

// BuildEventScope creates the scope selecting all events relevant for this
// use case: the book's catalog events and every loan touching this book,
// user or loan id.
func BuildEventScope(loanID uuid.UUID, bookID uuid.UUID, userID uuid.UUID) journal.Scope {
	return journal.ScopeFor(
		core.BookAddedToCatalogEventType,
		core.BookDetailsUpdatedEventType,
		core.BookRemovedFromCatalogEventType,
		core.LoanRequestedEventType,
		core.LoanApprovedEventType,
		core.LoanRejectedEventType,
		core.LoanReturnedEventType,
		core.LoanMarkedOverdueEventType,
	).AnyKeyOf(
		journal.K(journal.LoanIDKey, loanID.String()),
		journal.K(journal.BookIDKey, bookID.String()),
		journal.K(journal.UserIDKey, userID.String()),
	)
}

package returnloan

import (
	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// Decide implements the business logic for returning a loan.
//
// Business rules:
//
//	GIVEN: A loan with LoanID
//	WHEN: ReturnLoan command is received
//	THEN: LoanReturned event carrying the assessed fine is generated
//	FINE: whole calendar days past the due date times the per-day rate,
//	      zero when returned on or before the due date
//	ERROR: ErrUnknownLoan if the loan was never requested
//	ERROR: ErrInvalidTransition if the loan is requested, rejected or already returned
func Decide(history core.DomainEvents, command Command, policy core.Policy) core.DecisionResult {
	loan, found := core.ProjectLoan(history, command.LoanID.String())
	if !found {
		return core.ErrorDecision(core.ErrUnknownLoan)
	}

	if !loan.IsActive() {
		return core.ErrorDecision(core.ErrInvalidTransition)
	}

	fine := core.CalculateFine(loan.DueDate, command.OccurredAt, policy.FinePerDayOverdue)

	return core.SuccessDecision(
		core.BuildLoanReturned(
			command.LoanID,
			uuid.MustParse(loan.BookID),
			uuid.MustParse(loan.UserID),
			fine,
			command.OccurredAt,
		),
	)
}

// BuildEventScope creates the scope selecting all events of this loan.
func BuildEventScope(loanID uuid.UUID) journal.Scope {
	return journal.ScopeFor(
		core.LoanRequestedEventType,
		core.LoanApprovedEventType,
		core.LoanRejectedEventType,
		core.LoanReturnedEventType,
		core.LoanMarkedOverdueEventType,
	).AnyKeyOf(
		journal.K(journal.LoanIDKey, loanID.String()),
	)
}

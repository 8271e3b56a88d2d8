package rejectloan

import (
	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// Decide implements the business logic for rejecting a loan.
//
// Business rules:
//
//	GIVEN: A loan with LoanID
//	WHEN: RejectLoan command is received
//	THEN: LoanRejected event is generated, the loan is discarded
//	ERROR: ErrUnknownLoan if the loan was never requested
//	ERROR: ErrInvalidTransition if the loan is issued, overdue or returned
//	IDEMPOTENCY: rejecting an already-rejected loan generates no event
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	loan, found := core.ProjectLoan(history, command.LoanID.String())
	if !found {
		return core.ErrorDecision(core.ErrUnknownLoan)
	}

	switch loan.Status {
	case core.LoanStatusRejected:
		return core.IdempotentDecision()

	case core.LoanStatusRequested:
		return core.SuccessDecision(
			core.BuildLoanRejected(
				command.LoanID,
				uuid.MustParse(loan.BookID),
				uuid.MustParse(loan.UserID),
				command.Reason,
				command.OccurredAt,
			),
		)

	default:
		return core.ErrorDecision(core.ErrInvalidTransition)
	}
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

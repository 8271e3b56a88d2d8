package markloanoverdue

import (
	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// Decide implements the business logic for marking a loan overdue.
//
// Business rules:
//
//	GIVEN: A loan with LoanID
//	WHEN: MarkLoanOverdue command is received at a time after the due date
//	THEN: LoanMarkedOverdue event is generated
//	ERROR: ErrUnknownLoan if the loan was never requested
//	ERROR: ErrInvalidTransition if the loan is not issued, or not yet past due
//	IDEMPOTENCY: marking an already-overdue loan generates no event
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	loan, found := core.ProjectLoan(history, command.LoanID.String())
	if !found {
		return core.ErrorDecision(core.ErrUnknownLoan)
	}

	if loan.Status == core.LoanStatusOverdue {
		return core.IdempotentDecision()
	}

	if loan.Status != core.LoanStatusIssued || !loan.IsOverdueAt(command.OccurredAt) {
		return core.ErrorDecision(core.ErrInvalidTransition)
	}

	return core.SuccessDecision(
		core.BuildLoanMarkedOverdue(
			command.LoanID,
			uuid.MustParse(loan.BookID),
			uuid.MustParse(loan.UserID),
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

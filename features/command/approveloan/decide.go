package approveloan

import (
	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// Decide implements the business logic for approving a loan.
//
// Business rules:
//
//	GIVEN: A loan with LoanID
//	WHEN: ApproveLoan command is received
//	THEN: LoanApproved event with the due date is generated
//	ERROR: ErrUnknownLoan if the loan was never requested
//	ERROR: ErrInvalidTransition if the loan is not in Requested state
//
// Inventory is not decided here: the handler reserves a copy in the ledger
// and only appends when the reservation succeeded.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	loan, found := core.ProjectLoan(history, command.LoanID.String())
	if !found {
		return core.ErrorDecision(core.ErrUnknownLoan)
	}

	if loan.Status != core.LoanStatusRequested {
		return core.ErrorDecision(core.ErrInvalidTransition)
	}

	return core.SuccessDecision(
		core.BuildLoanApproved(
			command.LoanID,
			uuid.MustParse(loan.BookID),
			uuid.MustParse(loan.UserID),
			command.DueDate,
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

package removebook

import (
	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// Decide implements the business logic for removing a book from the catalog.
//
// Business rules:
//
//	GIVEN: A book with BookID
//	WHEN: RemoveBook command is received
//	THEN: BookRemovedFromCatalog event is generated
//	ERROR: ErrInvalidTransition while copies are still out on loan
//	IDEMPOTENCY: removing a book that is not in the catalog generates no event
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	bookID := command.BookID.String()

	if _, found := core.ProjectBook(history, bookID); !found {
		return core.IdempotentDecision()
	}

	if core.CountOutstandingCopies(history, bookID) > 0 {
		return core.ErrorDecision(core.ErrInvalidTransition)
	}

	return core.SuccessDecision(
		core.BuildBookRemovedFromCatalog(command.BookID, command.OccurredAt),
	)
}

// BuildEventScope creates the scope selecting this book's catalog events and
// the loan events needed to count outstanding copies.
func BuildEventScope(bookID uuid.UUID) journal.Scope {
	return journal.ScopeFor(
		core.BookAddedToCatalogEventType,
		core.BookDetailsUpdatedEventType,
		core.BookRemovedFromCatalogEventType,
		core.LoanApprovedEventType,
		core.LoanReturnedEventType,
	).AnyKeyOf(
		journal.K(journal.BookIDKey, bookID.String()),
	)
}

package updatebook

import (
	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// Decide implements the business logic for updating a book.
//
// Business rules:
//
//	GIVEN: A book with BookID
//	WHEN: UpdateBook command is received
//	THEN: BookDetailsUpdated event is generated
//	ERROR: ErrUnknownBook if the book was never added or was removed
//	ERROR: ErrInvalidTransition if the new quantity is below the copies out on loan
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	bookID := command.BookID.String()

	if _, found := core.ProjectBook(history, bookID); !found {
		return core.ErrorDecision(core.ErrUnknownBook)
	}

	if command.Quantity < core.CountOutstandingCopies(history, bookID) {
		return core.ErrorDecision(core.ErrInvalidTransition)
	}

	return core.SuccessDecision(
		core.BuildBookDetailsUpdated(
			command.BookID,
			command.Title,
			command.Author,
			command.ISBN,
			command.Category,
			command.ShelfLocation,
			command.Quantity,
			command.OccurredAt,
		),
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

package addbook

import (
	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// Decide implements the business logic for adding a book to the catalog.
//
// Business rules:
//
//	GIVEN: A book with BookID
//	WHEN: AddBook command is received
//	THEN: BookAddedToCatalog event is generated
//	IDEMPOTENCY: adding a book already in the catalog generates no event
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if _, found := core.ProjectBook(history, command.BookID.String()); found {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(
		core.BuildBookAddedToCatalog(
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

// BuildEventScope creates the scope selecting the catalog events of this book.
func BuildEventScope(bookID uuid.UUID) journal.Scope {
	return journal.ScopeFor(
		core.BookAddedToCatalogEventType,
		core.BookDetailsUpdatedEventType,
		core.BookRemovedFromCatalogEventType,
	).AnyKeyOf(
		journal.K(journal.BookIDKey, bookID.String()),
	)
}

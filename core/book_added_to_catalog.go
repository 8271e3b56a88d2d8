package core

import (
	"time"

	"github.com/google/uuid"
)

// BookAddedToCatalogEventType is the event type identifier.
const BookAddedToCatalogEventType = "BookAddedToCatalog"

// BookAddedToCatalog represents when a book enters the catalog with an
// initial number of copies.
type BookAddedToCatalog struct {
	EventType     string
	BookID        BookIDString
	Title         string
	Author        string
	ISBN          ISBNString
	Category      string
	ShelfLocation string
	TotalCopies   int
	OccurredAt    OccurredAtTS
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event.
func BuildBookAddedToCatalog(
	bookID uuid.UUID,
	title string,
	author string,
	isbn string,
	category string,
	shelfLocation string,
	totalCopies int,
	occurredAt time.Time,
) BookAddedToCatalog {

	return BookAddedToCatalog{
		EventType:     BookAddedToCatalogEventType,
		BookID:        bookID.String(),
		Title:         title,
		Author:        author,
		ISBN:          isbn,
		Category:      category,
		ShelfLocation: shelfLocation,
		TotalCopies:   totalCopies,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookAddedToCatalog) IsEventType() string {
	return BookAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

package core

import (
	"time"

	"github.com/google/uuid"
)

// BookDetailsUpdatedEventType is the event type identifier.
const BookDetailsUpdatedEventType = "BookDetailsUpdated"

// BookDetailsUpdated represents when a book's catalog details or copy count change.
type BookDetailsUpdated struct {
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

// BuildBookDetailsUpdated creates a new BookDetailsUpdated event.
func BuildBookDetailsUpdated(
	bookID uuid.UUID,
	title string,
	author string,
	isbn string,
	category string,
	shelfLocation string,
	totalCopies int,
	occurredAt time.Time,
) BookDetailsUpdated {

	return BookDetailsUpdated{
		EventType:     BookDetailsUpdatedEventType,
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
func (e BookDetailsUpdated) IsEventType() string {
	return BookDetailsUpdatedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookDetailsUpdated) HasOccurredAt() time.Time {
	return e.OccurredAt
}

package updatebook

import (
	"time"

	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
)

const (
	commandType = "UpdateBook"
)

// Command represents the intent to change a book's catalog details or copy count.
type Command struct {
	BookID        uuid.UUID
	Title         string
	Author        string
	ISBN          string
	Category      string
	ShelfLocation string
	Quantity      int
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	bookID uuid.UUID,
	title string,
	author string,
	isbn string,
	category string,
	shelfLocation string,
	quantity int,
	occurredAt time.Time,
) Command {

	return Command{
		BookID:        bookID,
		Title:         title,
		Author:        author,
		ISBN:          isbn,
		Category:      category,
		ShelfLocation: shelfLocation,
		Quantity:      quantity,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}

package popularbooks

import (
	"time"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// BookPopularity is one catalog book with its all-time borrow count.
type BookPopularity struct {
	BookID      core.BookIDString
	Title       string
	Author      string
	BorrowCount int
}

// PopularBooks is the query result ranking catalog books by borrow count.
type PopularBooks struct {
	Books          []BookPopularity
	Count          int
	SequenceNumber journal.SequenceNumber
	GeneratedAt    time.Time
}

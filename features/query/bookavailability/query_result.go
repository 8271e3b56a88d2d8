package bookavailability

import (
	"time"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// BookAvailabilityInfo is the copy situation of one catalog book.
type BookAvailabilityInfo struct {
	BookID      core.BookIDString
	Title       string
	TotalCopies int
	Outstanding int
	Available   int
}

// BookAvailability is the query result containing the copy situation of
// every catalog book.
type BookAvailability struct {
	Books          []BookAvailabilityInfo
	Count          int
	SequenceNumber journal.SequenceNumber
	GeneratedAt    time.Time
}

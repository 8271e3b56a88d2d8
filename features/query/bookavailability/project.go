package bookavailability

import (
	"slices"
	"time"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// Project implements the query logic to determine the copy situation of every
// catalog book. This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All catalog and loan events in the system
//	WHEN: BookAvailability query is executed
//	THEN: BookAvailability struct is returned, sorted by title (ascending)
//	INCLUDES: Every book currently in the catalog
//	EXCLUDES: Books removed from the catalog
//	DETAILS: Available is never negative, even when the copy count was
//	         shrunk while copies were out
func Project(history core.DomainEvents, maxSequence journal.SequenceNumber, generatedAt time.Time) BookAvailability {
	entries := make(map[core.BookIDString]*BookAvailabilityInfo)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			entries[e.BookID] = &BookAvailabilityInfo{
				BookID:      e.BookID,
				Title:       e.Title,
				TotalCopies: e.TotalCopies,
			}

		case core.BookDetailsUpdated:
			if entry := entries[e.BookID]; entry != nil {
				entry.Title = e.Title
				entry.TotalCopies = e.TotalCopies
			}

		case core.BookRemovedFromCatalog:
			delete(entries, e.BookID)

		case core.LoanApproved:
			if entry := entries[e.BookID]; entry != nil {
				entry.Outstanding++
			}

		case core.LoanReturned:
			if entry := entries[e.BookID]; entry != nil && entry.Outstanding > 0 {
				entry.Outstanding--
			}
		}
	}

	books := make([]BookAvailabilityInfo, 0, len(entries))
	for _, entryPtr := range entries {
		entry := *entryPtr
		entry.Available = entry.TotalCopies - entry.Outstanding
		if entry.Available < 0 {
			entry.Available = 0
		}
		books = append(books, entry)
	}
	slices.SortFunc(books, func(a, b BookAvailabilityInfo) int {
		if a.Title < b.Title {
			return -1
		}
		if a.Title > b.Title {
			return 1
		}
		return 0
	})

	return BookAvailability{
		Books:          books,
		Count:          len(books),
		SequenceNumber: maxSequence,
		GeneratedAt:    generatedAt,
	}
}

// BuildEventScope creates the scope selecting the catalog and loan events
// relevant for this query.
func BuildEventScope() journal.Scope {
	return journal.ScopeFor(
		core.BookAddedToCatalogEventType,
		core.BookDetailsUpdatedEventType,
		core.BookRemovedFromCatalogEventType,
		core.LoanApprovedEventType,
		core.LoanReturnedEventType,
	)
}

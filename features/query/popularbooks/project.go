package popularbooks

import (
	"slices"
	"time"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// Project implements the query logic to rank catalog books by how often they
// have been borrowed. This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All catalog and loan approval events in the system
//	WHEN: PopularBooks query is executed
//	THEN: PopularBooks struct is returned, highest borrow count first,
//	      ties broken by title (ascending)
//	INCLUDES: Every book currently in the catalog, borrowed or not
//	EXCLUDES: Books removed from the catalog
func Project(history core.DomainEvents, maxSequence journal.SequenceNumber, generatedAt time.Time) PopularBooks {
	entries := make(map[core.BookIDString]*BookPopularity)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			entries[e.BookID] = &BookPopularity{
				BookID: e.BookID,
				Title:  e.Title,
				Author: e.Author,
			}

		case core.BookDetailsUpdated:
			if entry := entries[e.BookID]; entry != nil {
				entry.Title = e.Title
				entry.Author = e.Author
			}

		case core.BookRemovedFromCatalog:
			delete(entries, e.BookID)

		case core.LoanApproved:
			if entry := entries[e.BookID]; entry != nil {
				entry.BorrowCount++
			}
		}
	}

	books := make([]BookPopularity, 0, len(entries))
	for _, entryPtr := range entries {
		books = append(books, *entryPtr)
	}
	slices.SortFunc(books, func(a, b BookPopularity) int {
		if a.BorrowCount != b.BorrowCount {
			return b.BorrowCount - a.BorrowCount
		}
		if a.Title < b.Title {
			return -1
		}
		if a.Title > b.Title {
			return 1
		}
		return 0
	})

	return PopularBooks{
		Books:          books,
		Count:          len(books),
		SequenceNumber: maxSequence,
		GeneratedAt:    generatedAt,
	}
}

// BuildEventScope creates the scope selecting the catalog and loan approval
// events relevant for this query.
func BuildEventScope() journal.Scope {
	return journal.ScopeFor(
		core.BookAddedToCatalogEventType,
		core.BookDetailsUpdatedEventType,
		core.BookRemovedFromCatalogEventType,
		core.LoanApprovedEventType,
	)
}

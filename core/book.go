package core

// Book is the current catalog state of one book, folded from its event history.
type Book struct {
	BookID        BookIDString
	Title         string
	Author        string
	ISBN          ISBNString
	Category      string
	ShelfLocation string
	TotalCopies   int
	Removed       bool
}

// CountOutstandingCopies counts the copies of one book currently out on loan
// (approved and not yet returned).
func CountOutstandingCopies(history DomainEvents, bookID BookIDString) int {
	outstanding := 0

	for _, event := range history {
		switch e := event.(type) {
		case LoanApproved:
			if e.BookID == bookID {
				outstanding++
			}

		case LoanReturned:
			if e.BookID == bookID && outstanding > 0 {
				outstanding--
			}
		}
	}

	return outstanding
}

// ProjectBook folds the history into the catalog state of one book.
// The second return value is false when the book was never added.
func ProjectBook(history DomainEvents, bookID BookIDString) (Book, bool) {
	book := Book{}
	found := false

	for _, event := range history {
		switch e := event.(type) {
		case BookAddedToCatalog:
			if e.BookID != bookID {
				continue
			}
			book = Book{
				BookID:        e.BookID,
				Title:         e.Title,
				Author:        e.Author,
				ISBN:          e.ISBN,
				Category:      e.Category,
				ShelfLocation: e.ShelfLocation,
				TotalCopies:   e.TotalCopies,
			}
			found = true

		case BookDetailsUpdated:
			if e.BookID != bookID {
				continue
			}
			book.Title = e.Title
			book.Author = e.Author
			book.ISBN = e.ISBN
			book.Category = e.Category
			book.ShelfLocation = e.ShelfLocation
			book.TotalCopies = e.TotalCopies

		case BookRemovedFromCatalog:
			if e.BookID != bookID {
				continue
			}
			book.Removed = true
		}
	}

	if found && book.Removed {
		return book, false
	}

	return book, found
}

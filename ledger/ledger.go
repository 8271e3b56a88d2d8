// Package ledger holds the in-memory availability ledger: per-book copy
// counts, mutated under a per-book lock. The journal stays the durable source
// of truth; the ledger is rebuilt from history at process start and kept in
// step by the command handlers.
package ledger

import (
	"errors"
	"sync"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// ErrInvariantViolation signals a programming error: a release or total
// adjustment that would break available == total - outstanding. The operation
// is aborted; nothing is changed.
var ErrInvariantViolation = errors.New("inventory invariant violation")

// Availability is the consistent per-book view returned by Snapshot.
type Availability struct {
	Total       int
	Available   int
	Outstanding int
}

type bookEntry struct {
	mu          sync.Mutex
	total       int
	outstanding int
}

// Ledger tracks per-book availability. All mutations on one book are
// serialized by that book's lock; distinct books do not contend.
type Ledger struct {
	mu     sync.RWMutex
	books  map[core.BookIDString]*bookEntry
	logger journal.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger used for invariant violation reports.
func WithLogger(logger journal.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// NewLedger creates an empty Ledger.
func NewLedger(options ...Option) *Ledger {
	l := &Ledger{
		books: make(map[core.BookIDString]*bookEntry),
	}

	for _, option := range options {
		option(l)
	}

	return l
}

// Track registers a book with the given total copy count and no outstanding
// loans. Tracking an already-tracked book resets it.
func (l *Ledger) Track(bookID core.BookIDString, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.books[bookID] = &bookEntry{total: total}
}

// Untrack removes a book from the ledger.
func (l *Ledger) Untrack(bookID core.BookIDString) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.books, bookID)
}

// SetTotal adjusts a book's total copy count. A total below the current
// outstanding count would make availability negative and is refused with
// ErrInvariantViolation.
func (l *Ledger) SetTotal(bookID core.BookIDString, total int) error {
	entry, ok := l.lookup(bookID)
	if !ok {
		return core.ErrUnknownBook
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if total < entry.outstanding {
		l.logInvariantViolation("total below outstanding loans", bookID)
		return ErrInvariantViolation
	}

	entry.total = total

	return nil
}

// Reserve takes one available copy of the book. Returns core.ErrOutOfStock
// when none is left and core.ErrUnknownBook for untracked books.
func (l *Ledger) Reserve(bookID core.BookIDString) error {
	entry, ok := l.lookup(bookID)
	if !ok {
		return core.ErrUnknownBook
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.outstanding >= entry.total {
		return core.ErrOutOfStock
	}

	entry.outstanding++

	return nil
}

// Release puts one copy back. Releasing beyond the total is a programming
// error and fails with ErrInvariantViolation without changing anything.
func (l *Ledger) Release(bookID core.BookIDString) error {
	entry, ok := l.lookup(bookID)
	if !ok {
		return core.ErrUnknownBook
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.outstanding == 0 {
		l.logInvariantViolation("release without outstanding loan", bookID)
		return ErrInvariantViolation
	}

	entry.outstanding--

	return nil
}

// Outstanding returns the number of copies of a book currently out on loan.
func (l *Ledger) Outstanding(bookID core.BookIDString) int {
	entry, ok := l.lookup(bookID)
	if !ok {
		return 0
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.outstanding
}

// Snapshot returns a consistent per-book availability view.
func (l *Ledger) Snapshot() map[core.BookIDString]Availability {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make(map[core.BookIDString]Availability, len(l.books))
	for bookID, entry := range l.books {
		entry.mu.Lock()
		snapshot[bookID] = Availability{
			Total:       entry.total,
			Available:   entry.total - entry.outstanding,
			Outstanding: entry.outstanding,
		}
		entry.mu.Unlock()
	}

	return snapshot
}

// Rebuild resets the ledger and folds the full journal history into it.
// Called once at process start, before any commands are accepted.
func (l *Ledger) Rebuild(history core.DomainEvents) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.books = make(map[core.BookIDString]*bookEntry)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			l.books[e.BookID] = &bookEntry{total: e.TotalCopies}

		case core.BookDetailsUpdated:
			if entry, ok := l.books[e.BookID]; ok {
				entry.total = e.TotalCopies
			}

		case core.BookRemovedFromCatalog:
			delete(l.books, e.BookID)

		case core.LoanApproved:
			if entry, ok := l.books[e.BookID]; ok {
				entry.outstanding++
			}

		case core.LoanReturned:
			if entry, ok := l.books[e.BookID]; ok && entry.outstanding > 0 {
				entry.outstanding--
			}
		}
	}
}

func (l *Ledger) lookup(bookID core.BookIDString) (*bookEntry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entry, ok := l.books[bookID]

	return entry, ok
}

func (l *Ledger) logInvariantViolation(msg string, bookID core.BookIDString) {
	if l.logger != nil {
		l.logger.Error("inventory invariant violation: "+msg, "book_id", bookID)
	}
}

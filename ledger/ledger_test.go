package ledger_test

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/ledger"
)

func Test_Reserve_DecrementsAvailability(t *testing.T) {
	// arrange
	l := ledger.NewLedger()
	l.Track("b-1", 2)

	// act
	err := l.Reserve("b-1")

	// assert
	assert.NoError(t, err)
	assert.Equal(t, ledger.Availability{Total: 2, Available: 1, Outstanding: 1}, l.Snapshot()["b-1"])
}

func Test_Reserve_FailsWhenOutOfStock(t *testing.T) {
	// arrange
	l := ledger.NewLedger()
	l.Track("b-1", 1)
	assert.NoError(t, l.Reserve("b-1"))

	// act
	err := l.Reserve("b-1")

	// assert
	assert.ErrorIs(t, err, core.ErrOutOfStock)
	assert.Equal(t, 0, l.Snapshot()["b-1"].Available)
}

func Test_Reserve_FailsForUntrackedBook(t *testing.T) {
	// act
	err := ledger.NewLedger().Reserve("nope")

	// assert
	assert.ErrorIs(t, err, core.ErrUnknownBook)
}

func Test_ReserveThenRelease_RestoresAvailability(t *testing.T) {
	// arrange
	l := ledger.NewLedger()
	l.Track("b-1", 3)
	assert.NoError(t, l.Reserve("b-1"))

	// act
	err := l.Release("b-1")

	// assert
	assert.NoError(t, err)
	assert.Equal(t, ledger.Availability{Total: 3, Available: 3, Outstanding: 0}, l.Snapshot()["b-1"])
}

func Test_Release_BeyondTotalIsAnInvariantViolation(t *testing.T) {
	// arrange
	l := ledger.NewLedger()
	l.Track("b-1", 1)

	// act
	err := l.Release("b-1")

	// assert
	assert.ErrorIs(t, err, ledger.ErrInvariantViolation)
	assert.Equal(t, 1, l.Snapshot()["b-1"].Available)
}

func Test_SetTotal_RefusesTotalBelowOutstanding(t *testing.T) {
	// arrange
	l := ledger.NewLedger()
	l.Track("b-1", 2)
	assert.NoError(t, l.Reserve("b-1"))
	assert.NoError(t, l.Reserve("b-1"))

	// act
	err := l.SetTotal("b-1", 1)

	// assert
	assert.ErrorIs(t, err, ledger.ErrInvariantViolation)

	// act: raising is fine
	assert.NoError(t, l.SetTotal("b-1", 5))
	assert.Equal(t, ledger.Availability{Total: 5, Available: 3, Outstanding: 2}, l.Snapshot()["b-1"])
}

func Test_ConcurrentReserves_NeverOversell(t *testing.T) {
	// arrange
	const copies = 10
	const attempts = 100

	l := ledger.NewLedger()
	l.Track("b-1", copies)

	var wg sync.WaitGroup
	succeeded := make(chan struct{}, attempts)

	// act
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Reserve("b-1") == nil {
				succeeded <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(succeeded)

	// assert
	assert.Len(t, succeeded, copies)
	assert.Equal(t, ledger.Availability{Total: copies, Available: 0, Outstanding: copies}, l.Snapshot()["b-1"])
}

func Test_Rebuild_FoldsHistoryIntoAvailability(t *testing.T) {
	// arrange
	bookA := uuid.New()
	bookB := uuid.New()
	userID := uuid.New()
	loanA := uuid.New()
	loanB := uuid.New()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	dueDate := now.AddDate(0, 0, 14)

	history := core.DomainEvents{
		core.BuildBookAddedToCatalog(bookA, "Dune", "Frank Herbert", "", "", "", 2, now),
		core.BuildBookAddedToCatalog(bookB, "Solaris", "Stanislaw Lem", "", "", "", 1, now),
		core.BuildLoanRequested(loanA, bookA, userID, now),
		core.BuildLoanApproved(loanA, bookA, userID, dueDate, now),
		core.BuildLoanRequested(loanB, bookB, userID, now),
		core.BuildLoanApproved(loanB, bookB, userID, dueDate, now),
		core.BuildLoanReturned(loanB, bookB, userID, 0, now.AddDate(0, 0, 3)),
	}

	l := ledger.NewLedger()

	// act
	l.Rebuild(history)

	// assert
	snapshot := l.Snapshot()
	assert.Equal(t, ledger.Availability{Total: 2, Available: 1, Outstanding: 1}, snapshot[bookA.String()])
	assert.Equal(t, ledger.Availability{Total: 1, Available: 1, Outstanding: 0}, snapshot[bookB.String()])
}

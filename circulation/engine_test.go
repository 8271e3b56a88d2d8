package circulation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-engine-go/circulation"
	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/testutil/memoryjournal"
)

func Test_Engine_ThirdApprovalFailsWhenOnlyTwoCopiesExist(t *testing.T) {
	// arrange
	ctx := context.Background()
	engine := givenStartedEngine(t)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	bookID := uuid.New()
	givenBookInCatalog(t, ctx, engine, bookID, 2, now)

	loans := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, loanID := range loans {
		_, err := engine.RequestLoan(ctx, loanID, bookID, uuid.New(), now.Add(time.Duration(i)*time.Minute))
		assert.NoError(t, err)
	}

	// act
	_, err1 := engine.ApproveLoan(ctx, loans[0], now.Add(time.Hour))
	_, err2 := engine.ApproveLoan(ctx, loans[1], now.Add(time.Hour))
	_, err3 := engine.ApproveLoan(ctx, loans[2], now.Add(time.Hour))

	// assert: two copies go out, the third approval finds no stock
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.ErrorIs(t, err3, core.ErrOutOfStock)

	availability, ok := engine.Availability(bookID)
	assert.True(t, ok)
	assert.Equal(t, 0, availability.Available)
	assert.Equal(t, 2, availability.Outstanding)
}

func Test_Engine_FourthLoanExceedsLimitUntilOneIsReturned(t *testing.T) {
	// arrange: one user, three active loans
	ctx := context.Background()
	engine := givenStartedEngine(t)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()

	firstLoan := uuid.New()
	for i := 0; i < 3; i++ {
		bookID := uuid.New()
		givenBookInCatalog(t, ctx, engine, bookID, 1, now)

		loanID := uuid.New()
		if i == 0 {
			loanID = firstLoan
		}

		_, err := engine.RequestLoan(ctx, loanID, bookID, userID, now.Add(time.Duration(i)*time.Minute))
		assert.NoError(t, err)
		_, err = engine.ApproveLoan(ctx, loanID, now.Add(time.Hour))
		assert.NoError(t, err)
	}

	fourthBook := uuid.New()
	givenBookInCatalog(t, ctx, engine, fourthBook, 1, now)

	// act: a fourth request hits the limit
	_, err := engine.RequestLoan(ctx, uuid.New(), fourthBook, userID, now.Add(2*time.Hour))

	// assert
	assert.ErrorIs(t, err, core.ErrLimitExceeded)

	// act: returning one loan frees the slot
	_, err = engine.ReturnLoan(ctx, firstLoan, now.Add(3*time.Hour))
	assert.NoError(t, err)

	_, err = engine.RequestLoan(ctx, uuid.New(), fourthBook, userID, now.Add(4*time.Hour))

	// assert
	assert.NoError(t, err)
}

func Test_Engine_LateReturnAssessesFinePerOverdueDay(t *testing.T) {
	// arrange
	ctx := context.Background()
	engine := givenStartedEngine(t)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	bookID := uuid.New()
	userID := uuid.New()
	loanID := uuid.New()
	givenBookInCatalog(t, ctx, engine, bookID, 1, now)

	_, err := engine.RequestLoan(ctx, loanID, bookID, userID, now)
	assert.NoError(t, err)
	_, err = engine.ApproveLoan(ctx, loanID, now.Add(time.Hour))
	assert.NoError(t, err)

	dueDate := engine.Policy().DueDateFor(now.Add(time.Hour))

	// act: return 5 days past the due date
	_, err = engine.ReturnLoan(ctx, loanID, dueDate.AddDate(0, 0, 5))
	assert.NoError(t, err)

	// assert: 5 days at 2.0 per day
	history, err := engine.UserLoanHistory(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 1, history.Count)
	assert.Equal(t, core.LoanStatusReturned, history.Loans[0].Status)
	assert.Equal(t, 10.0, history.Loans[0].Fine)
}

func Test_Engine_PopularBooksCountsApprovedBorrows(t *testing.T) {
	// arrange: book A borrowed three times in sequence, book B once
	ctx := context.Background()
	engine := givenStartedEngine(t)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	bookA := uuid.New()
	bookB := uuid.New()
	_, err := engine.AddBook(ctx, bookA, "Book A", "Author A", "978-0000000001", "Fiction", "A-01", 1, now)
	assert.NoError(t, err)
	_, err = engine.AddBook(ctx, bookB, "Book B", "Author B", "978-0000000002", "Fiction", "A-02", 1, now)
	assert.NoError(t, err)

	at := now
	for i := 0; i < 3; i++ {
		loanID := uuid.New()
		at = at.Add(time.Hour)

		_, err = engine.RequestLoan(ctx, loanID, bookA, uuid.New(), at)
		assert.NoError(t, err)
		_, err = engine.ApproveLoan(ctx, loanID, at.Add(time.Minute))
		assert.NoError(t, err)
		_, err = engine.ReturnLoan(ctx, loanID, at.Add(2*time.Minute))
		assert.NoError(t, err)
	}

	loanB := uuid.New()
	_, err = engine.RequestLoan(ctx, loanB, bookB, uuid.New(), at.Add(time.Hour))
	assert.NoError(t, err)
	_, err = engine.ApproveLoan(ctx, loanB, at.Add(time.Hour))
	assert.NoError(t, err)

	// act
	result, err := engine.PopularBooks(ctx)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, bookA.String(), result.Books[0].BookID)
	assert.Equal(t, 3, result.Books[0].BorrowCount)
	assert.Equal(t, bookB.String(), result.Books[1].BookID)
	assert.Equal(t, 1, result.Books[1].BorrowCount)
}

func Test_Engine_OverdueReportDerivesFromDueDate(t *testing.T) {
	// arrange: loan never reclassified by the batch job
	ctx := context.Background()
	engine := givenStartedEngine(t)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	bookID := uuid.New()
	loanID := uuid.New()
	givenBookInCatalog(t, ctx, engine, bookID, 1, now)

	_, err := engine.RequestLoan(ctx, loanID, bookID, uuid.New(), now)
	assert.NoError(t, err)
	_, err = engine.ApproveLoan(ctx, loanID, now)
	assert.NoError(t, err)

	dueDate := engine.Policy().DueDateFor(now)

	// act
	result, err := engine.OverdueLoans(ctx, dueDate.AddDate(0, 0, 3))

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, loanID.String(), result.Loans[0].LoanID)
	assert.Equal(t, 3, result.Loans[0].DaysOverdue)
	assert.Equal(t, 6.0, result.Loans[0].AccruedFine)
}

func Test_Engine_StartRebuildsLedgerFromJournal(t *testing.T) {
	// arrange: one engine writes history, a second one starts over the same journal
	ctx := context.Background()
	jnl := memoryjournal.NewJournal()

	first := circulation.NewEngine(jnl)
	assert.NoError(t, first.Start(ctx))

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	bookID := uuid.New()
	loanID := uuid.New()
	givenBookInCatalog(t, ctx, first, bookID, 2, now)

	_, err := first.RequestLoan(ctx, loanID, bookID, uuid.New(), now)
	assert.NoError(t, err)
	_, err = first.ApproveLoan(ctx, loanID, now)
	assert.NoError(t, err)

	// act
	second := circulation.NewEngine(jnl)
	assert.NoError(t, second.Start(ctx))

	// assert: the rebuilt ledger sees the outstanding copy
	availability, ok := second.Availability(bookID)
	assert.True(t, ok)
	assert.Equal(t, 2, availability.Total)
	assert.Equal(t, 1, availability.Outstanding)
	assert.Equal(t, 1, availability.Available)
}

func Test_Engine_BookAvailabilityReportMatchesLedger(t *testing.T) {
	// arrange
	ctx := context.Background()
	engine := givenStartedEngine(t)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	bookID := uuid.New()
	loanID := uuid.New()
	givenBookInCatalog(t, ctx, engine, bookID, 3, now)

	_, err := engine.RequestLoan(ctx, loanID, bookID, uuid.New(), now)
	assert.NoError(t, err)
	_, err = engine.ApproveLoan(ctx, loanID, now)
	assert.NoError(t, err)

	// act
	report, err := engine.BookAvailability(ctx)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Count)
	assert.Equal(t, 3, report.Books[0].TotalCopies)
	assert.Equal(t, 1, report.Books[0].Outstanding)
	assert.Equal(t, 2, report.Books[0].Available)

	availability, _ := engine.Availability(bookID)
	assert.Equal(t, report.Books[0].Outstanding, availability.Outstanding)
}

func givenStartedEngine(t *testing.T) *circulation.Engine {
	t.Helper()

	engine := circulation.NewEngine(memoryjournal.NewJournal())
	assert.NoError(t, engine.Start(context.Background()))

	return engine
}

func givenBookInCatalog(
	t *testing.T,
	ctx context.Context,
	engine *circulation.Engine,
	bookID uuid.UUID,
	quantity int,
	at time.Time,
) {
	t.Helper()

	_, err := engine.AddBook(ctx, bookID, "Some Book", "Some Author", "978-0441172719", "Fiction", "A-01", quantity, at)
	assert.NoError(t, err)
}

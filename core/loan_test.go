package core_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-engine-go/core"
)

func Test_ProjectLoan_FollowsTheLifecycle(t *testing.T) {
	// arrange
	loanID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	requestedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	dueDate := requestedAt.AddDate(0, 0, 14)
	returnedAt := dueDate.AddDate(0, 0, 2)

	history := core.DomainEvents{
		core.BuildLoanRequested(loanID, bookID, userID, requestedAt),
		core.BuildLoanApproved(loanID, bookID, userID, dueDate, requestedAt.Add(time.Hour)),
		core.BuildLoanReturned(loanID, bookID, userID, 4.0, returnedAt),
	}

	// act
	loan, found := core.ProjectLoan(history, loanID.String())

	// assert
	assert.True(t, found)
	assert.Equal(t, core.LoanStatusReturned, loan.Status)
	assert.Equal(t, bookID.String(), loan.BookID)
	assert.Equal(t, userID.String(), loan.UserID)
	assert.Equal(t, 4.0, loan.Fine)
	assert.Equal(t, core.ToOccurredAt(dueDate), loan.DueDate)
}

func Test_ProjectLoan_UnknownLoanIsNotFound(t *testing.T) {
	// arrange
	history := core.DomainEvents{
		core.BuildLoanRequested(uuid.New(), uuid.New(), uuid.New(), time.Now()),
	}

	// act
	_, found := core.ProjectLoan(history, uuid.New().String())

	// assert
	assert.False(t, found)
}

func Test_Loan_IsOverdueAt_DerivesFromDueDate(t *testing.T) {
	// arrange
	loanID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	requestedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	dueDate := requestedAt.AddDate(0, 0, 14)

	history := core.DomainEvents{
		core.BuildLoanRequested(loanID, bookID, userID, requestedAt),
		core.BuildLoanApproved(loanID, bookID, userID, dueDate, requestedAt),
	}
	loan, _ := core.ProjectLoan(history, loanID.String())

	// assert: still Issued in the journal, but derived overdue once past due
	assert.Equal(t, core.LoanStatusIssued, loan.Status)
	assert.False(t, loan.IsOverdueAt(dueDate))
	assert.True(t, loan.IsOverdueAt(dueDate.Add(time.Minute)))
}

func Test_Loan_IsOverdueAt_ReturnedLoanIsNeverOverdue(t *testing.T) {
	// arrange
	loanID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	dueDate := now.AddDate(0, 0, 14)

	history := core.DomainEvents{
		core.BuildLoanRequested(loanID, bookID, userID, now),
		core.BuildLoanApproved(loanID, bookID, userID, dueDate, now),
		core.BuildLoanReturned(loanID, bookID, userID, 0, dueDate.AddDate(0, 0, 5)),
	}
	loan, _ := core.ProjectLoan(history, loanID.String())

	// assert
	assert.False(t, loan.IsOverdueAt(dueDate.AddDate(0, 0, 10)))
}

func Test_CountActiveLoans_CountsIssuedAndOverdueOnly(t *testing.T) {
	// arrange
	userID := uuid.New()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	dueDate := now.AddDate(0, 0, 14)

	issued := uuid.New()
	overdue := uuid.New()
	returned := uuid.New()
	requested := uuid.New()
	rejected := uuid.New()

	history := core.DomainEvents{}
	for _, loanID := range []uuid.UUID{issued, overdue, returned, requested, rejected} {
		history = append(history, core.BuildLoanRequested(loanID, uuid.New(), userID, now))
	}
	for _, loanID := range []uuid.UUID{issued, overdue, returned} {
		history = append(history, core.BuildLoanApproved(loanID, uuid.New(), userID, dueDate, now))
	}
	history = append(history,
		core.BuildLoanMarkedOverdue(overdue, uuid.New(), userID, dueDate.AddDate(0, 0, 1)),
		core.BuildLoanReturned(returned, uuid.New(), userID, 0, now.AddDate(0, 0, 3)),
		core.BuildLoanRejected(rejected, uuid.New(), userID, "not eligible", now),
	)

	// act
	active := core.CountActiveLoans(history, userID.String())

	// assert
	assert.Equal(t, 2, active)
}

func Test_ProjectBook_AppliesUpdatesAndRemoval(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	history := core.DomainEvents{
		core.BuildBookAddedToCatalog(bookID, "Dune", "Frank Herbert", "9780441172719", "SciFi", "A-12", 2, now),
		core.BuildBookDetailsUpdated(bookID, "Dune", "Frank Herbert", "9780441172719", "SciFi", "B-03", 4, now.Add(time.Hour)),
	}

	// act
	book, found := core.ProjectBook(history, bookID.String())

	// assert
	assert.True(t, found)
	assert.Equal(t, 4, book.TotalCopies)
	assert.Equal(t, "B-03", book.ShelfLocation)

	// act: removal makes it not found
	history = append(history, core.BuildBookRemovedFromCatalog(bookID, now.Add(2*time.Hour)))
	_, found = core.ProjectBook(history, bookID.String())

	// assert
	assert.False(t, found)
}

package requestloan_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/features/command/requestloan"
)

func Test_Decide_Success_WhenBookKnownAndUserBelowLimit(t *testing.T) {
	// arrange
	loanID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		givenBookAdded(t, bookID, 2, now.Add(-time.Hour)),
	}

	command := requestloan.BuildCommand(loanID, bookID, userID, now)

	// act
	result := requestloan.Decide(history, command, core.DefaultPolicy())

	// assert
	assert.True(t, result.HasEventToAppend())
	assert.NoError(t, result.HasError())

	event, ok := result.Event.(core.LoanRequested)
	assert.True(t, ok)
	assert.Equal(t, loanID.String(), event.LoanID)
	assert.Equal(t, bookID.String(), event.BookID)
	assert.Equal(t, userID.String(), event.UserID)
}

func Test_Decide_Error_WhenBookIsUnknown(t *testing.T) {
	// arrange
	command := requestloan.BuildCommand(uuid.New(), uuid.New(), uuid.New(), time.Now())

	// act
	result := requestloan.Decide(core.DomainEvents{}, command, core.DefaultPolicy())

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrUnknownBook)
	assert.False(t, result.HasEventToAppend())
}

func Test_Decide_Error_WhenBookWasRemoved(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		givenBookAdded(t, bookID, 1, now.Add(-2*time.Hour)),
		core.BuildBookRemovedFromCatalog(bookID, now.Add(-time.Hour)),
	}

	command := requestloan.BuildCommand(uuid.New(), bookID, uuid.New(), now)

	// act
	result := requestloan.Decide(history, command, core.DefaultPolicy())

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrUnknownBook)
}

func Test_Decide_Error_WhenUserAtActiveLoanLimit(t *testing.T) {
	// arrange
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	policy := core.DefaultPolicy()

	history := core.DomainEvents{
		givenBookAdded(t, bookID, 5, now.Add(-10*time.Hour)),
	}
	for i := 0; i < policy.MaxActiveLoansPerUser; i++ {
		otherLoanID := uuid.New()
		otherBookID := uuid.New()
		history = append(history,
			givenBookAdded(t, otherBookID, 1, now.Add(-9*time.Hour)),
			core.BuildLoanRequested(otherLoanID, otherBookID, userID, now.Add(-8*time.Hour)),
			core.BuildLoanApproved(otherLoanID, otherBookID, userID, now.AddDate(0, 0, 14), now.Add(-7*time.Hour)),
		)
	}

	command := requestloan.BuildCommand(uuid.New(), bookID, userID, now)

	// act
	result := requestloan.Decide(history, command, policy)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrLimitExceeded)
}

func Test_Decide_Success_AfterReturnFreesALoanSlot(t *testing.T) {
	// arrange
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	policy := core.DefaultPolicy()

	history := core.DomainEvents{
		givenBookAdded(t, bookID, 5, now.Add(-10*time.Hour)),
	}

	returnedLoanID := uuid.New()
	for i := 0; i < policy.MaxActiveLoansPerUser; i++ {
		loanID := uuid.New()
		if i == 0 {
			loanID = returnedLoanID
		}
		otherBookID := uuid.New()
		history = append(history,
			givenBookAdded(t, otherBookID, 1, now.Add(-9*time.Hour)),
			core.BuildLoanRequested(loanID, otherBookID, userID, now.Add(-8*time.Hour)),
			core.BuildLoanApproved(loanID, otherBookID, userID, now.AddDate(0, 0, 14), now.Add(-7*time.Hour)),
		)
	}
	history = append(history,
		core.BuildLoanReturned(returnedLoanID, uuid.New(), userID, 0, now.Add(-time.Hour)))

	command := requestloan.BuildCommand(uuid.New(), bookID, userID, now)

	// act
	result := requestloan.Decide(history, command, policy)

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())
}

func Test_Decide_Idempotent_ForRepeatedIdenticalRequest(t *testing.T) {
	// arrange
	loanID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		givenBookAdded(t, bookID, 1, now.Add(-2*time.Hour)),
		core.BuildLoanRequested(loanID, bookID, userID, now.Add(-time.Hour)),
	}

	command := requestloan.BuildCommand(loanID, bookID, userID, now)

	// act
	result := requestloan.Decide(history, command, core.DefaultPolicy())

	// assert
	assert.False(t, result.HasEventToAppend())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Error_WhenLoanIDTakenByDifferentRequest(t *testing.T) {
	// arrange
	loanID := uuid.New()
	bookID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		givenBookAdded(t, bookID, 1, now.Add(-2*time.Hour)),
		core.BuildLoanRequested(loanID, bookID, uuid.New(), now.Add(-time.Hour)),
	}

	command := requestloan.BuildCommand(loanID, bookID, uuid.New(), now)

	// act
	result := requestloan.Decide(history, command, core.DefaultPolicy())

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidTransition)
}

func givenBookAdded(t *testing.T, bookID uuid.UUID, copies int, at time.Time) core.DomainEvent {
	t.Helper()

	return core.BuildBookAddedToCatalog(bookID, "Some Title", "Some Author", "", "", "", copies, at)
}

package removebook_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/features/command/removebook"
)

func Test_Decide_Success_WhenNoCopiesOutstanding(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		core.BuildBookAddedToCatalog(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 2, now.Add(-time.Hour)),
	}

	// act
	result := removebook.Decide(history, removebook.BuildCommand(bookID, now))

	// assert
	assert.NoError(t, result.HasError())

	event, ok := result.Event.(core.BookRemovedFromCatalog)
	assert.True(t, ok)
	assert.Equal(t, bookID.String(), event.BookID)
}

func Test_Decide_Error_WhenCopiesStillOnLoan(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		core.BuildBookAddedToCatalog(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 2, now.Add(-2*time.Hour)),
		core.BuildLoanApproved(uuid.New(), bookID, uuid.New(), now.AddDate(0, 0, 14), now.Add(-time.Hour)),
	}

	// act
	result := removebook.Decide(history, removebook.BuildCommand(bookID, now))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidTransition)
}

func Test_Decide_Success_AfterAllCopiesReturned(t *testing.T) {
	// arrange
	bookID := uuid.New()
	userID := uuid.New()
	loanID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		core.BuildBookAddedToCatalog(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 2, now.Add(-3*time.Hour)),
		core.BuildLoanApproved(loanID, bookID, userID, now.AddDate(0, 0, 14), now.Add(-2*time.Hour)),
		core.BuildLoanReturned(loanID, bookID, userID, 0, now.Add(-time.Hour)),
	}

	// act
	result := removebook.Decide(history, removebook.BuildCommand(bookID, now))

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())
}

func Test_Decide_Idempotent_WhenBookNotInCatalog(t *testing.T) {
	// act
	result := removebook.Decide(core.DomainEvents{}, removebook.BuildCommand(uuid.New(), time.Now()))

	// assert
	assert.NoError(t, result.HasError())
	assert.False(t, result.HasEventToAppend())
}

func Test_Decide_Idempotent_WhenBookAlreadyRemoved(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		core.BuildBookAddedToCatalog(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 2, now.Add(-2*time.Hour)),
		core.BuildBookRemovedFromCatalog(bookID, now.Add(-time.Hour)),
	}

	// act
	result := removebook.Decide(history, removebook.BuildCommand(bookID, now))

	// assert
	assert.NoError(t, result.HasError())
	assert.False(t, result.HasEventToAppend())
}

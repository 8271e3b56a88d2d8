package updatebook_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/features/command/updatebook"
)

func Test_Decide_Success_UpdatesDetailsAndQuantity(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		core.BuildBookAddedToCatalog(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 2, now.Add(-time.Hour)),
	}

	command := updatebook.BuildCommand(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "C-07", 5, now)

	// act
	result := updatebook.Decide(history, command)

	// assert
	assert.NoError(t, result.HasError())

	event, ok := result.Event.(core.BookDetailsUpdated)
	assert.True(t, ok)
	assert.Equal(t, "C-07", event.ShelfLocation)
	assert.Equal(t, 5, event.TotalCopies)
}

func Test_Decide_Error_WhenBookUnknown(t *testing.T) {
	// act
	result := updatebook.Decide(
		core.DomainEvents{},
		updatebook.BuildCommand(uuid.New(), "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 2, time.Now()),
	)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrUnknownBook)
}

func Test_Decide_Error_WhenQuantityBelowOutstandingLoans(t *testing.T) {
	// arrange: 2 copies out on loan, shrinking to 1 must be refused
	bookID := uuid.New()
	now := time.Now()
	dueDate := now.AddDate(0, 0, 14)

	loan1 := uuid.New()
	loan2 := uuid.New()

	history := core.DomainEvents{
		core.BuildBookAddedToCatalog(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 3, now.Add(-3*time.Hour)),
		core.BuildLoanApproved(loan1, bookID, uuid.New(), dueDate, now.Add(-2*time.Hour)),
		core.BuildLoanApproved(loan2, bookID, uuid.New(), dueDate, now.Add(-time.Hour)),
	}

	command := updatebook.BuildCommand(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 1, now)

	// act
	result := updatebook.Decide(history, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidTransition)
}

func Test_Decide_Success_WhenQuantityMatchesOutstandingLoans(t *testing.T) {
	// arrange: 1 copy out, shrinking to exactly 1 is allowed
	bookID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		core.BuildBookAddedToCatalog(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 3, now.Add(-2*time.Hour)),
		core.BuildLoanApproved(uuid.New(), bookID, uuid.New(), now.AddDate(0, 0, 14), now.Add(-time.Hour)),
	}

	command := updatebook.BuildCommand(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 1, now)

	// act
	result := updatebook.Decide(history, command)

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())
}

package addbook_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/features/command/addbook"
)

func Test_Decide_Success_WhenBookIsNew(t *testing.T) {
	// arrange
	bookID := uuid.New()
	command := addbook.BuildCommand(
		bookID, "The Go Programming Language", "Donovan & Kernighan",
		"978-0134190440", "Programming", "A-12", 3, time.Now(),
	)

	// act
	result := addbook.Decide(core.DomainEvents{}, command)

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())

	event, ok := result.Event.(core.BookAddedToCatalog)
	assert.True(t, ok)
	assert.Equal(t, bookID.String(), event.BookID)
	assert.Equal(t, 3, event.TotalCopies)
}

func Test_Decide_Idempotent_WhenBookAlreadyInCatalog(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		core.BuildBookAddedToCatalog(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 2, now.Add(-time.Hour)),
	}

	command := addbook.BuildCommand(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 2, now)

	// act
	result := addbook.Decide(history, command)

	// assert
	assert.NoError(t, result.HasError())
	assert.False(t, result.HasEventToAppend())
}

func Test_Decide_Success_WhenBookWasRemovedBefore(t *testing.T) {
	// arrange: removal clears the catalog entry, so adding again is a fresh add
	bookID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		core.BuildBookAddedToCatalog(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 2, now.Add(-2*time.Hour)),
		core.BuildBookRemovedFromCatalog(bookID, now.Add(-time.Hour)),
	}

	command := addbook.BuildCommand(bookID, "Dune", "Frank Herbert", "978-0441172719", "SciFi", "B-03", 4, now)

	// act
	result := addbook.Decide(history, command)

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())
}

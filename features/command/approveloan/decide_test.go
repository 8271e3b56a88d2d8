package approveloan_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/features/command/approveloan"
)

func Test_Decide_Success_FromRequestedState(t *testing.T) {
	// arrange
	loanID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	dueDate := now.AddDate(0, 0, 14)

	history := core.DomainEvents{
		core.BuildLoanRequested(loanID, bookID, userID, now.Add(-time.Hour)),
	}

	command := approveloan.BuildCommand(loanID, dueDate, now)

	// act
	result := approveloan.Decide(history, command)

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())

	event, ok := result.Event.(core.LoanApproved)
	assert.True(t, ok)
	assert.Equal(t, bookID.String(), event.BookID)
	assert.Equal(t, userID.String(), event.UserID)
	assert.Equal(t, core.ToOccurredAt(dueDate), event.DueDate)
}

func Test_Decide_Error_WhenLoanUnknown(t *testing.T) {
	// act
	result := approveloan.Decide(core.DomainEvents{}, approveloan.BuildCommand(uuid.New(), time.Now(), time.Now()))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrUnknownLoan)
}

func Test_Decide_Error_WhenLoanNotInRequestedState(t *testing.T) {
	loanID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	dueDate := now.AddDate(0, 0, 14)

	testCases := []struct {
		name   string
		events core.DomainEvents
	}{
		{
			name: "already issued",
			events: core.DomainEvents{
				core.BuildLoanRequested(loanID, bookID, userID, now.Add(-2*time.Hour)),
				core.BuildLoanApproved(loanID, bookID, userID, dueDate, now.Add(-time.Hour)),
			},
		},
		{
			name: "already rejected",
			events: core.DomainEvents{
				core.BuildLoanRequested(loanID, bookID, userID, now.Add(-2*time.Hour)),
				core.BuildLoanRejected(loanID, bookID, userID, "no", now.Add(-time.Hour)),
			},
		},
		{
			name: "already returned",
			events: core.DomainEvents{
				core.BuildLoanRequested(loanID, bookID, userID, now.Add(-3*time.Hour)),
				core.BuildLoanApproved(loanID, bookID, userID, dueDate, now.Add(-2*time.Hour)),
				core.BuildLoanReturned(loanID, bookID, userID, 0, now.Add(-time.Hour)),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := approveloan.Decide(tc.events, approveloan.BuildCommand(loanID, dueDate, now))

			// assert
			assert.ErrorIs(t, result.HasError(), core.ErrInvalidTransition)
			assert.False(t, result.HasEventToAppend())
		})
	}
}

package rejectloan_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/features/command/rejectloan"
)

func Test_Decide_Success_FromRequestedState(t *testing.T) {
	// arrange
	loanID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		core.BuildLoanRequested(loanID, bookID, userID, now.Add(-time.Hour)),
	}

	// act
	result := rejectloan.Decide(history, rejectloan.BuildCommand(loanID, "damaged copy", now))

	// assert
	assert.NoError(t, result.HasError())

	event, ok := result.Event.(core.LoanRejected)
	assert.True(t, ok)
	assert.Equal(t, "damaged copy", event.Reason)
}

func Test_Decide_Idempotent_WhenAlreadyRejected(t *testing.T) {
	// arrange
	loanID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		core.BuildLoanRequested(loanID, bookID, userID, now.Add(-2*time.Hour)),
		core.BuildLoanRejected(loanID, bookID, userID, "no", now.Add(-time.Hour)),
	}

	// act
	result := rejectloan.Decide(history, rejectloan.BuildCommand(loanID, "no", now))

	// assert
	assert.False(t, result.HasEventToAppend())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Error_WhenLoanUnknown(t *testing.T) {
	// act
	result := rejectloan.Decide(core.DomainEvents{}, rejectloan.BuildCommand(uuid.New(), "no", time.Now()))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrUnknownLoan)
}

func Test_Decide_Error_WhenLoanAlreadyIssued(t *testing.T) {
	// arrange
	loanID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		core.BuildLoanRequested(loanID, bookID, userID, now.Add(-2*time.Hour)),
		core.BuildLoanApproved(loanID, bookID, userID, now.AddDate(0, 0, 14), now.Add(-time.Hour)),
	}

	// act
	result := rejectloan.Decide(history, rejectloan.BuildCommand(loanID, "no", now))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidTransition)
}

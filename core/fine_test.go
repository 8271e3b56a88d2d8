package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-engine-go/core"
)

func Test_CalculateFine_ReturnOnDueDayIsFree(t *testing.T) {
	// arrange
	dueDate := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	returnedAt := time.Date(2025, 3, 10, 23, 45, 0, 0, time.UTC)

	// act
	fine := core.CalculateFine(dueDate, returnedAt, 2.0)

	// assert
	assert.Equal(t, 0.0, fine)
}

func Test_CalculateFine_ReturnBeforeDueDateIsFree(t *testing.T) {
	// arrange
	dueDate := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	returnedAt := dueDate.AddDate(0, 0, -2)

	// act
	fine := core.CalculateFine(dueDate, returnedAt, 2.0)

	// assert
	assert.Equal(t, 0.0, fine)
}

func Test_CalculateFine_ThreeDaysLate(t *testing.T) {
	// arrange
	dueDate := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	returnedAt := dueDate.AddDate(0, 0, 3)

	// act
	fine := core.CalculateFine(dueDate, returnedAt, 2.0)

	// assert
	assert.Equal(t, 6.0, fine)
}

func Test_CalculateFine_FiveDaysLate(t *testing.T) {
	// arrange
	dueDate := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	returnedAt := dueDate.AddDate(0, 0, 5)

	// act
	fine := core.CalculateFine(dueDate, returnedAt, 2.0)

	// assert
	assert.Equal(t, 10.0, fine)
}

func Test_CalculateFine_TruncatesPartialDays(t *testing.T) {
	// arrange: due late in the evening, returned early next morning - one calendar day late
	dueDate := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	returnedAt := time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC)

	// act
	fine := core.CalculateFine(dueDate, returnedAt, 2.0)

	// assert
	assert.Equal(t, 2.0, fine)
}

func Test_Policy_DueDateFor_AddsLoanPeriod(t *testing.T) {
	// arrange
	policy := core.DefaultPolicy()
	approvedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// act
	dueDate := policy.DueDateFor(approvedAt)

	// assert
	assert.Equal(t, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC), dueDate)
}

func Test_DefaultPolicy_Values(t *testing.T) {
	// act
	policy := core.DefaultPolicy()

	// assert
	assert.Equal(t, 3, policy.MaxActiveLoansPerUser)
	assert.Equal(t, 2.0, policy.FinePerDayOverdue)
	assert.Equal(t, 14, policy.LoanPeriodDays)
}

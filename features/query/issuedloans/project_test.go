package issuedloans_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/features/query/issuedloans"
)

func Test_Project_ListsActiveLoansInIssueOrder(t *testing.T) {
	// arrange
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	dueDate := now.AddDate(0, 0, 14)

	loan1 := uuid.New()
	loan2 := uuid.New()
	loan3 := uuid.New()

	history := core.DomainEvents{
		core.BuildLoanApproved(loan1, uuid.New(), uuid.New(), dueDate, now.Add(-3*time.Hour)),
		core.BuildLoanApproved(loan2, uuid.New(), uuid.New(), dueDate, now.Add(-2*time.Hour)),
		core.BuildLoanApproved(loan3, uuid.New(), uuid.New(), dueDate, now.Add(-time.Hour)),
		core.BuildLoanReturned(loan2, uuid.New(), uuid.New(), 0, now),
	}

	// act
	result := issuedloans.Project(history, 4, now)

	// assert: loan2 was returned, the rest stay in issue order
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, loan1.String(), result.Loans[0].LoanID)
	assert.Equal(t, loan3.String(), result.Loans[1].LoanID)
	assert.Equal(t, uint(4), result.SequenceNumber)
}

func Test_Project_KeepsOverdueLoansWithTheirStatus(t *testing.T) {
	// arrange
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	loanID := uuid.New()

	history := core.DomainEvents{
		core.BuildLoanApproved(loanID, uuid.New(), uuid.New(), now.AddDate(0, 0, -1), now.AddDate(0, 0, -15)),
		core.BuildLoanMarkedOverdue(loanID, uuid.New(), uuid.New(), now),
	}

	// act
	result := issuedloans.Project(history, 2, now)

	// assert
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, core.LoanStatusOverdue, result.Loans[0].Status)
}

func Test_Project_EmptyHistoryYieldsEmptyReport(t *testing.T) {
	// act
	result := issuedloans.Project(core.DomainEvents{}, 0, time.Now())

	// assert
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Loans)
}

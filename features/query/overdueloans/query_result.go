package overdueloans

import (
	"time"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// OverdueLoanInfo is one overdue loan in the report.
type OverdueLoanInfo struct {
	LoanID      core.LoanIDString
	BookID      core.BookIDString
	UserID      core.UserIDString
	DueDate     time.Time
	DaysOverdue int
	AccruedFine float64
}

// OverdueLoans is the query result containing all overdue loans as of a
// point in time.
type OverdueLoans struct {
	AsOf           time.Time
	Loans          []OverdueLoanInfo
	Count          int
	SequenceNumber journal.SequenceNumber
	GeneratedAt    time.Time
}

package issuedloans

import (
	"time"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// LoanInfo is one active loan in the report.
type LoanInfo struct {
	LoanID   core.LoanIDString
	BookID   core.BookIDString
	UserID   core.UserIDString
	IssuedAt time.Time
	DueDate  time.Time
	Status   core.LoanStatus
}

// IssuedLoans is the query result containing all loans currently out.
type IssuedLoans struct {
	Loans          []LoanInfo
	Count          int
	SequenceNumber journal.SequenceNumber
	GeneratedAt    time.Time
}

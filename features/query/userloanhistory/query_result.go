package userloanhistory

import (
	"time"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// UserLoanHistory is the query result containing one user's loans in
// request order.
type UserLoanHistory struct {
	UserID         core.UserIDString
	Loans          []core.Loan
	Count          int
	SequenceNumber journal.SequenceNumber
	GeneratedAt    time.Time
}

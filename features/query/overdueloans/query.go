package overdueloans

import (
	"time"

	"github.com/circulib/lending-engine-go/core"
)

const (
	queryType = "OverdueLoans"
)

// Query represents the intent to list overdue loans as of a point in time.
type Query struct {
	AsOf core.OccurredAtTS
}

// BuildQuery creates a new Query with the provided reference time.
func BuildQuery(asOf time.Time) Query {
	return Query{
		AsOf: core.ToOccurredAt(asOf),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

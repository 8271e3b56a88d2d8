package markloanoverdue

import (
	"time"

	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
)

const (
	commandType = "MarkLoanOverdue"
)

// Command represents the intent to reclassify an issued loan as overdue.
type Command struct {
	LoanID     uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(loanID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		LoanID:     loanID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

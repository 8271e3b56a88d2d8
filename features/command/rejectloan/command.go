package rejectloan

import (
	"time"

	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
)

const (
	commandType = "RejectLoan"
)

// Command represents the intent to turn down a requested loan.
type Command struct {
	LoanID     uuid.UUID
	Reason     string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(loanID uuid.UUID, reason string, occurredAt time.Time) Command {
	return Command{
		LoanID:     loanID,
		Reason:     reason,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

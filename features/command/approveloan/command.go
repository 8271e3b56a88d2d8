package approveloan

import (
	"time"

	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
)

const (
	commandType = "ApproveLoan"
)

// Command represents the intent to approve a requested loan and hand out a copy.
type Command struct {
	LoanID     uuid.UUID
	DueDate    time.Time
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(loanID uuid.UUID, dueDate time.Time, occurredAt time.Time) Command {
	return Command{
		LoanID:     loanID,
		DueDate:    core.ToOccurredAt(dueDate),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

package removebook

import (
	"context"

	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
	"github.com/circulib/lending-engine-go/shell"
)

// Journal defines the interface needed by the CommandHandler for journal operations.
type Journal interface {
	Query(ctx context.Context, scope journal.Scope) (
		journal.StoredEvents,
		journal.SequenceNumber,
		error,
	)
	Append(
		ctx context.Context,
		scope journal.Scope,
		expectedMaxSeq journal.SequenceNumber,
		event journal.StoredEvent,
	) error
}

// InventoryUntracker is the slice of the ledger this handler needs.
type InventoryUntracker interface {
	Untrack(bookID core.BookIDString)
}

// CommandHandler orchestrates the remove book workflow:
// Query -> Unmarshal -> Decide -> Append -> Untrack, with concurrency conflict retry.
type CommandHandler struct {
	journal      Journal
	inventory    InventoryUntracker
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(jnl Journal, inventory InventoryUntracker, opts ...Option) CommandHandler {
	handler := CommandHandler{
		journal:   jnl,
		inventory: inventory,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the command with retry on concurrency conflicts.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	var isIdempotent bool

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		idempotent, execErr := h.executeCommand(retryCtx, command)
		isIdempotent = idempotent

		return execErr
	}, h.retryOptions...)

	if isIdempotent {
		return shell.NewIdempotentResult(retryMetrics), err
	}

	if err != nil {
		return shell.NewErrorResult(retryMetrics), err
	}

	return shell.NewSuccessResult(retryMetrics), nil
}

func (h CommandHandler) executeCommand(ctx context.Context, command Command) (bool, error) {
	scope := BuildEventScope(command.BookID)

	storedEvents, maxSeq, err := h.journal.Query(ctx, scope)
	if err != nil {
		return false, err
	}

	history, err := shell.DomainEventsFrom(storedEvents)
	if err != nil {
		return false, err
	}

	result := Decide(history, command)

	if decideErr := result.HasError(); decideErr != nil {
		return false, decideErr
	}

	if !result.HasEventToAppend() {
		return true, nil
	}

	uid := uuid.New()
	eventMetadata := shell.BuildEventMetadata(uid, uid, uid)

	storedEvent, marshalErr := shell.StoredEventFrom(result.Event, eventMetadata)
	if marshalErr != nil {
		return false, marshalErr
	}

	if appendErr := h.journal.Append(ctx, scope, maxSeq, storedEvent); appendErr != nil {
		return false, appendErr
	}

	h.inventory.Untrack(command.BookID.String())

	return false, nil
}

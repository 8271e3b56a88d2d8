package returnloan

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
	"github.com/circulib/lending-engine-go/notify"
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

// InventoryReleaser is the slice of the ledger this handler needs.
type InventoryReleaser interface {
	Release(bookID core.BookIDString) error
}

// CommandHandler orchestrates the return loan workflow:
// Query -> Unmarshal -> Decide -> Append -> Release, with concurrency
// conflict retry. The append is the durable commit; the release that follows
// it cannot legally fail while the ledger is in step with the journal.
type CommandHandler struct {
	journal      Journal
	inventory    InventoryReleaser
	policy       core.Policy
	sink         notify.Sink
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

// WithNotificationSink sets the sink receiving LoanReturned and FineAssessed notifications.
func WithNotificationSink(sink notify.Sink) Option {
	return func(h *CommandHandler) {
		h.sink = sink
	}
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(jnl Journal, inventory InventoryReleaser, policy core.Policy, opts ...Option) CommandHandler {
	handler := CommandHandler{
		journal:   jnl,
		inventory: inventory,
		policy:    policy,
		sink:      notify.NopSink{},
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
	scope := BuildEventScope(command.LoanID)

	storedEvents, maxSeq, err := h.journal.Query(ctx, scope)
	if err != nil {
		return false, err
	}

	history, err := shell.DomainEventsFrom(storedEvents)
	if err != nil {
		return false, err
	}

	result := Decide(history, command, h.policy)

	if decideErr := result.HasError(); decideErr != nil {
		return false, decideErr
	}

	if !result.HasEventToAppend() {
		return true, nil
	}

	returned, ok := result.Event.(core.LoanReturned)
	if !ok {
		return false, errors.New("unexpected event type from return loan decision")
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

	if releaseErr := h.inventory.Release(returned.BookID); releaseErr != nil {
		return false, releaseErr
	}

	h.publishNotifications(returned)

	return false, nil
}

func (h CommandHandler) publishNotifications(returned core.LoanReturned) {
	h.sink.Publish(notify.Notification{
		Kind:       notify.KindLoanReturned,
		LoanID:     returned.LoanID,
		BookID:     returned.BookID,
		UserID:     returned.UserID,
		OccurredAt: returned.OccurredAt,
	})

	if returned.Fine > 0 {
		h.sink.Publish(notify.Notification{
			Kind:       notify.KindFineAssessed,
			LoanID:     returned.LoanID,
			BookID:     returned.BookID,
			UserID:     returned.UserID,
			Amount:     returned.Fine,
			OccurredAt: returned.OccurredAt,
		})
	}
}

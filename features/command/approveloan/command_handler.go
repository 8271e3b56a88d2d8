package approveloan

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

// InventoryReserver is the slice of the ledger this handler needs:
// reserving a copy before the append, releasing it when the append fails.
type InventoryReserver interface {
	Reserve(bookID core.BookIDString) error
	Release(bookID core.BookIDString) error
}

// CommandHandler orchestrates the approve loan workflow:
// Query -> Unmarshal -> Decide -> Reserve -> Append, with the reservation
// compensated on append failure and retry on concurrency conflicts.
type CommandHandler struct {
	journal      Journal
	inventory    InventoryReserver
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

// WithNotificationSink sets the sink receiving LoanApproved notifications.
func WithNotificationSink(sink notify.Sink) Option {
	return func(h *CommandHandler) {
		h.sink = sink
	}
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(jnl Journal, inventory InventoryReserver, opts ...Option) CommandHandler {
	handler := CommandHandler{
		journal:   jnl,
		inventory: inventory,
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

	result := Decide(history, command)

	if decideErr := result.HasError(); decideErr != nil {
		return false, decideErr
	}

	if !result.HasEventToAppend() {
		return true, nil
	}

	approved, ok := result.Event.(core.LoanApproved)
	if !ok {
		return false, errors.New("unexpected event type from approve loan decision")
	}

	// reserve before append; the append is the durable commit
	if reserveErr := h.inventory.Reserve(approved.BookID); reserveErr != nil {
		return false, reserveErr
	}

	uid := uuid.New()
	eventMetadata := shell.BuildEventMetadata(uid, uid, uid)

	storedEvent, marshalErr := shell.StoredEventFrom(result.Event, eventMetadata)
	if marshalErr != nil {
		h.compensateReservation(approved.BookID)
		return false, marshalErr
	}

	if appendErr := h.journal.Append(ctx, scope, maxSeq, storedEvent); appendErr != nil {
		h.compensateReservation(approved.BookID)
		return false, appendErr
	}

	h.sink.Publish(notify.Notification{
		Kind:       notify.KindLoanApproved,
		LoanID:     approved.LoanID,
		BookID:     approved.BookID,
		UserID:     approved.UserID,
		OccurredAt: approved.OccurredAt,
	})

	return false, nil
}

func (h CommandHandler) compensateReservation(bookID core.BookIDString) {
	// best effort: a failed release is an inventory invariant violation and
	// is logged inside the ledger
	_ = h.inventory.Release(bookID)
}

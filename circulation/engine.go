package circulation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/features/command/addbook"
	"github.com/circulib/lending-engine-go/features/command/approveloan"
	"github.com/circulib/lending-engine-go/features/command/markloanoverdue"
	"github.com/circulib/lending-engine-go/features/command/rejectloan"
	"github.com/circulib/lending-engine-go/features/command/removebook"
	"github.com/circulib/lending-engine-go/features/command/requestloan"
	"github.com/circulib/lending-engine-go/features/command/returnloan"
	"github.com/circulib/lending-engine-go/features/command/updatebook"
	"github.com/circulib/lending-engine-go/features/query/bookavailability"
	"github.com/circulib/lending-engine-go/features/query/issuedloans"
	"github.com/circulib/lending-engine-go/features/query/overdueloans"
	"github.com/circulib/lending-engine-go/features/query/popularbooks"
	"github.com/circulib/lending-engine-go/features/query/userloanhistory"
	"github.com/circulib/lending-engine-go/journal"
	"github.com/circulib/lending-engine-go/ledger"
	"github.com/circulib/lending-engine-go/notify"
	"github.com/circulib/lending-engine-go/shell"
)

// Journal defines the interface the Engine needs from the loan journal.
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

// Engine is the facade over the lending engine: every command and report of
// the system as one method. Safe for concurrent use.
type Engine struct {
	journal   Journal
	policy    core.Policy
	inventory *ledger.Ledger
	sink      notify.Sink

	logger           shell.Logger
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector

	requestLoanHandler     requestloan.CommandHandler
	approveLoanHandler     approveloan.CommandHandler
	rejectLoanHandler      rejectloan.CommandHandler
	returnLoanHandler      returnloan.CommandHandler
	markLoanOverdueHandler markloanoverdue.CommandHandler
	addBookHandler         addbook.CommandHandler
	updateBookHandler      updatebook.CommandHandler
	removeBookHandler      removebook.CommandHandler

	issuedLoansHandler      issuedloans.QueryHandler
	overdueLoansHandler     overdueloans.QueryHandler
	popularBooksHandler     popularbooks.QueryHandler
	userLoanHistoryHandler  userloanhistory.QueryHandler
	bookAvailabilityHandler bookavailability.QueryHandler
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy overrides the default lending policy.
func WithPolicy(policy core.Policy) Option {
	return func(e *Engine) {
		e.policy = policy
	}
}

// WithNotificationSink sets the sink receiving borrower notifications.
func WithNotificationSink(sink notify.Sink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithLogger sets the logger used by the ledger and the query handlers.
func WithLogger(logger shell.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics sets the metrics collector for all handlers.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(e *Engine) {
		e.metricsCollector = collector
	}
}

// WithTracing sets the tracing collector for all query handlers.
func WithTracing(collector shell.TracingCollector) Option {
	return func(e *Engine) {
		e.tracingCollector = collector
	}
}

// NewEngine creates an Engine on top of the given journal. The ledger starts
// empty; call Start to fold the journal history into it before accepting
// commands.
func NewEngine(jnl Journal, opts ...Option) *Engine {
	e := &Engine{
		journal: jnl,
		policy:  core.DefaultPolicy(),
		sink:    notify.NopSink{},
	}

	for _, opt := range opts {
		opt(e)
	}

	e.inventory = ledger.NewLedger(ledger.WithLogger(e.logger))

	e.requestLoanHandler = requestloan.NewCommandHandler(e.journal, e.policy)
	e.approveLoanHandler = approveloan.NewCommandHandler(
		e.journal, e.inventory, approveloan.WithNotificationSink(e.sink),
	)
	e.rejectLoanHandler = rejectloan.NewCommandHandler(e.journal)
	e.returnLoanHandler = returnloan.NewCommandHandler(
		e.journal, e.inventory, e.policy, returnloan.WithNotificationSink(e.sink),
	)
	e.markLoanOverdueHandler = markloanoverdue.NewCommandHandler(
		e.journal, markloanoverdue.WithNotificationSink(e.sink),
	)
	e.addBookHandler = addbook.NewCommandHandler(e.journal, e.inventory)
	e.updateBookHandler = updatebook.NewCommandHandler(e.journal, e.inventory)
	e.removeBookHandler = removebook.NewCommandHandler(e.journal, e.inventory)

	e.issuedLoansHandler = issuedloans.NewQueryHandler(
		e.journal,
		issuedloans.WithLogging(e.logger),
		issuedloans.WithMetrics(e.metricsCollector),
		issuedloans.WithTracing(e.tracingCollector),
	)
	e.overdueLoansHandler = overdueloans.NewQueryHandler(
		e.journal, e.policy,
		overdueloans.WithLogging(e.logger),
		overdueloans.WithMetrics(e.metricsCollector),
		overdueloans.WithTracing(e.tracingCollector),
	)
	e.popularBooksHandler = popularbooks.NewQueryHandler(
		e.journal,
		popularbooks.WithLogging(e.logger),
		popularbooks.WithMetrics(e.metricsCollector),
		popularbooks.WithTracing(e.tracingCollector),
	)
	e.userLoanHistoryHandler = userloanhistory.NewQueryHandler(
		e.journal,
		userloanhistory.WithLogging(e.logger),
		userloanhistory.WithMetrics(e.metricsCollector),
		userloanhistory.WithTracing(e.tracingCollector),
	)
	e.bookAvailabilityHandler = bookavailability.NewQueryHandler(
		e.journal,
		bookavailability.WithLogging(e.logger),
		bookavailability.WithMetrics(e.metricsCollector),
		bookavailability.WithTracing(e.tracingCollector),
	)

	return e
}

// Start rebuilds the availability ledger from the journal history. Must be
// called once before the Engine accepts commands.
func (e *Engine) Start(ctx context.Context) error {
	scope := bookavailability.BuildEventScope()

	storedEvents, _, err := e.journal.Query(ctx, scope)
	if err != nil {
		return err
	}

	history, err := shell.DomainEventsFrom(storedEvents)
	if err != nil {
		return err
	}

	e.inventory.Rebuild(history)

	return nil
}

// Policy returns the lending policy the Engine runs with.
func (e *Engine) Policy() core.Policy {
	return e.policy
}

/*** Commands ***/

// AddBook puts a new book into the catalog with the given number of copies.
func (e *Engine) AddBook(
	ctx context.Context,
	bookID uuid.UUID,
	title string,
	author string,
	isbn string,
	category string,
	shelfLocation string,
	quantity int,
	occurredAt time.Time,
) (shell.HandlerResult, error) {
	command := addbook.BuildCommand(bookID, title, author, isbn, category, shelfLocation, quantity, occurredAt)

	return e.addBookHandler.Handle(ctx, command)
}

// UpdateBook changes a book's catalog details or copy count.
func (e *Engine) UpdateBook(
	ctx context.Context,
	bookID uuid.UUID,
	title string,
	author string,
	isbn string,
	category string,
	shelfLocation string,
	quantity int,
	occurredAt time.Time,
) (shell.HandlerResult, error) {
	command := updatebook.BuildCommand(bookID, title, author, isbn, category, shelfLocation, quantity, occurredAt)

	return e.updateBookHandler.Handle(ctx, command)
}

// RemoveBook takes a book out of the catalog. Refused while copies are out.
func (e *Engine) RemoveBook(
	ctx context.Context,
	bookID uuid.UUID,
	occurredAt time.Time,
) (shell.HandlerResult, error) {
	return e.removeBookHandler.Handle(ctx, removebook.BuildCommand(bookID, occurredAt))
}

// RequestLoan records a user's intent to borrow a book. The per-user active
// loan limit is enforced here.
func (e *Engine) RequestLoan(
	ctx context.Context,
	loanID uuid.UUID,
	bookID uuid.UUID,
	userID uuid.UUID,
	occurredAt time.Time,
) (shell.HandlerResult, error) {
	return e.requestLoanHandler.Handle(ctx, requestloan.BuildCommand(loanID, bookID, userID, occurredAt))
}

// ApproveLoan hands out a copy for a requested loan. The due date follows
// from the approval time and the policy's loan period. Fails with
// core.ErrOutOfStock when no copy is available.
func (e *Engine) ApproveLoan(
	ctx context.Context,
	loanID uuid.UUID,
	occurredAt time.Time,
) (shell.HandlerResult, error) {
	dueDate := e.policy.DueDateFor(occurredAt)

	return e.approveLoanHandler.Handle(ctx, approveloan.BuildCommand(loanID, dueDate, occurredAt))
}

// RejectLoan declines a requested loan with a reason.
func (e *Engine) RejectLoan(
	ctx context.Context,
	loanID uuid.UUID,
	reason string,
	occurredAt time.Time,
) (shell.HandlerResult, error) {
	return e.rejectLoanHandler.Handle(ctx, rejectloan.BuildCommand(loanID, reason, occurredAt))
}

// ReturnLoan takes a borrowed copy back, assessing the overdue fine if the
// return is late.
func (e *Engine) ReturnLoan(
	ctx context.Context,
	loanID uuid.UUID,
	occurredAt time.Time,
) (shell.HandlerResult, error) {
	return e.returnLoanHandler.Handle(ctx, returnloan.BuildCommand(loanID, occurredAt))
}

// MarkLoanOverdue reclassifies an issued loan whose due date has passed.
// Meant for the periodic batch job; reports derive overdue-ness from the due
// date regardless.
func (e *Engine) MarkLoanOverdue(
	ctx context.Context,
	loanID uuid.UUID,
	occurredAt time.Time,
) (shell.HandlerResult, error) {
	return e.markLoanOverdueHandler.Handle(ctx, markloanoverdue.BuildCommand(loanID, occurredAt))
}

/*** Reports ***/

// IssuedLoans lists every loan currently holding a copy.
func (e *Engine) IssuedLoans(ctx context.Context) (issuedloans.IssuedLoans, error) {
	return e.issuedLoansHandler.Handle(ctx)
}

// OverdueLoans lists every active loan late as of the given time, with days
// late and accrued fine.
func (e *Engine) OverdueLoans(ctx context.Context, asOf time.Time) (overdueloans.OverdueLoans, error) {
	return e.overdueLoansHandler.Handle(ctx, overdueloans.BuildQuery(asOf))
}

// PopularBooks ranks catalog books by how often they have been borrowed.
func (e *Engine) PopularBooks(ctx context.Context) (popularbooks.PopularBooks, error) {
	return e.popularBooksHandler.Handle(ctx)
}

// UserLoanHistory lists one user's loans in request order.
func (e *Engine) UserLoanHistory(ctx context.Context, userID uuid.UUID) (userloanhistory.UserLoanHistory, error) {
	return e.userLoanHistoryHandler.Handle(ctx, userloanhistory.BuildQuery(userID))
}

// BookAvailability reports the copy situation of every catalog book.
func (e *Engine) BookAvailability(ctx context.Context) (bookavailability.BookAvailability, error) {
	return e.bookAvailabilityHandler.Handle(ctx)
}

// Availability returns the ledger's current view of one book, the same
// numbers a concurrent approval would see.
func (e *Engine) Availability(bookID uuid.UUID) (ledger.Availability, bool) {
	snapshot := e.inventory.Snapshot()
	availability, ok := snapshot[bookID.String()]

	return availability, ok
}

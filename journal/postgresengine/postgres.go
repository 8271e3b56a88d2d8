package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/circulib/lending-engine-go/journal"
	"github.com/circulib/lending-engine-go/journal/postgresengine/internal/db"
)

const (
	defaultTableName = "loan_events"

	colEventType      = "event_type"
	colOccurredAt     = "occurred_at"
	colPayload        = "payload"
	colMetadata       = "metadata"
	colSequenceNumber = "sequence_number"
	cteScope          = "scope"
	aliasMaxSeq       = "max_seq"
	dialectPostgres   = "postgres"

	queryDurationMetric  = "journal_query_duration_seconds"
	appendDurationMetric = "journal_append_duration_seconds"
	conflictMetric       = "journal_concurrency_conflicts_total"

	logMsgQueryCompleted      = "journal query completed"
	logMsgEventAppended       = "journal event appended"
	logMsgConcurrencyConflict = "journal concurrency conflict detected"
	logMsgSQLExecuted         = "executed journal sql"
	logAttrAction             = "action"
	logAttrError              = "error"
	logAttrQuery              = "query"
	logAttrEventType          = "event_type"
	logAttrEventCount         = "event_count"
	logAttrDurationMS         = "duration_ms"
	logAttrExpectedSequence   = "expected_sequence"
)

// Journal is the PostgreSQL-backed loan journal. It appends domain events
// atomically with optimistic concurrency control and queries them back by
// scope, in sequence order.
type Journal struct {
	db               db.Handle
	tableName        string
	logger           journal.Logger
	metricsCollector journal.MetricsCollector
}

// Option configures a Journal.
type Option func(*Journal) error

// WithTableName overrides the journal table name.
func WithTableName(tableName string) Option {
	return func(j *Journal) error {
		if tableName == "" {
			return journal.ErrEmptyTableName
		}

		j.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger. Debug level carries SQL with timing, info level
// carries event counts and conflicts, error level carries failures.
func WithLogger(logger journal.Logger) Option {
	return func(j *Journal) error {
		j.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector receiving query/append durations and
// concurrency conflict counts.
func WithMetrics(collector journal.MetricsCollector) Option {
	return func(j *Journal) error {
		j.metricsCollector = collector
		return nil
	}
}

// NewJournalFromPGXPool creates a Journal on a pgx connection pool.
func NewJournalFromPGXPool(pool *pgxpool.Pool, options ...Option) (Journal, error) {
	if pool == nil {
		return Journal{}, journal.ErrNilDatabaseConnection
	}

	return newJournal(db.NewPGXHandle(pool), options...)
}

// NewJournalFromSQLDB creates a Journal on a database/sql handle.
func NewJournalFromSQLDB(sqlDB *sql.DB, options ...Option) (Journal, error) {
	if sqlDB == nil {
		return Journal{}, journal.ErrNilDatabaseConnection
	}

	return newJournal(db.NewSQLHandle(sqlDB), options...)
}

// NewJournalFromSQLX creates a Journal on a sqlx handle.
func NewJournalFromSQLX(sqlxDB *sqlx.DB, options ...Option) (Journal, error) {
	if sqlxDB == nil {
		return Journal{}, journal.ErrNilDatabaseConnection
	}

	return newJournal(db.NewSQLXHandle(sqlxDB), options...)
}

func newJournal(handle db.Handle, options ...Option) (Journal, error) {
	j := Journal{
		db:        handle,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&j); err != nil {
			return Journal{}, err
		}
	}

	return j, nil
}

// Query returns all events matching the scope in sequence order, together
// with the scope's max sequence number at the time of the query.
func (j Journal) Query(ctx context.Context, scope journal.Scope) (
	journal.StoredEvents,
	journal.SequenceNumber,
	error,
) {

	sqlQuery, buildErr := j.buildSelectQuery(scope)
	if buildErr != nil {
		return nil, 0, buildErr
	}

	start := time.Now()
	rows, queryErr := j.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	j.logSQL(sqlQuery, "query", duration)

	if queryErr != nil {
		j.logError("journal query failed", queryErr, sqlQuery)
		return nil, 0, errors.Join(journal.ErrQueryingJournalFailed, queryErr)
	}
	defer j.closeRows(rows)

	events, maxSeq, scanErr := j.scanRows(rows)
	if scanErr != nil {
		return nil, 0, scanErr
	}

	j.recordDuration(queryDurationMetric, duration)
	j.logInfo(logMsgQueryCompleted,
		logAttrEventCount, len(events),
		logAttrDurationMS, durationToMilliseconds(duration))

	return events, maxSeq, nil
}

// Append inserts one event iff the max sequence number of the scope still
// equals expectedMaxSeq. On a lost race it inserts nothing and returns
// journal.ErrConcurrencyConflict.
func (j Journal) Append(
	ctx context.Context,
	scope journal.Scope,
	expectedMaxSeq journal.SequenceNumber,
	event journal.StoredEvent,
) error {

	sqlQuery, buildErr := j.buildInsertQuery(event, scope, expectedMaxSeq)
	if buildErr != nil {
		j.logError("building journal insert failed", buildErr, "")
		return buildErr
	}

	start := time.Now()
	result, execErr := j.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	j.logSQL(sqlQuery, "append", duration)

	if execErr != nil {
		j.logError("journal append failed", execErr, sqlQuery)
		return errors.Join(journal.ErrAppendingEventFailed, execErr)
	}

	rowsAffected, rowsErr := result.RowsAffected()
	if rowsErr != nil {
		j.logError("reading rows affected failed", rowsErr, "")
		return errors.Join(journal.ErrAppendingEventFailed, rowsErr)
	}

	if rowsAffected == 0 {
		j.incrementCounter(conflictMetric, map[string]string{logAttrEventType: event.EventType})
		j.logInfo(logMsgConcurrencyConflict,
			logAttrEventType, event.EventType,
			logAttrExpectedSequence, expectedMaxSeq)

		return journal.ErrConcurrencyConflict
	}

	j.recordDuration(appendDurationMetric, duration)
	j.logInfo(logMsgEventAppended,
		logAttrEventType, event.EventType,
		logAttrDurationMS, durationToMilliseconds(duration))

	return nil
}

func (j Journal) buildSelectQuery(scope journal.Scope) (string, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(j.tableName).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colSequenceNumber).
		Order(goqu.I(colSequenceNumber).Asc())

	selectStmt = addScopeWhereClause(scope, selectStmt)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (j Journal) buildInsertQuery(
	event journal.StoredEvent,
	scope journal.Scope,
	expectedMaxSeq journal.SequenceNumber,
) (string, error) {

	builder := goqu.Dialect(dialectPostgres)

	cteStmt := builder.
		From(j.tableName).
		Select(goqu.MAX(colSequenceNumber).As(aliasMaxSeq))

	cteStmt = addScopeWhereClause(scope, cteStmt)

	selectStmt := builder.
		From(cteScope).
		Select(goqu.V(event.EventType), goqu.V(event.OccurredAt), goqu.V(event.PayloadJSON), goqu.V(event.MetadataJSON)).
		Where(goqu.COALESCE(goqu.C(aliasMaxSeq), 0).Eq(goqu.V(expectedMaxSeq)))

	insertStmt := builder.
		Insert(j.tableName).
		Cols(colEventType, colOccurredAt, colPayload, colMetadata).
		FromQuery(selectStmt).
		With(cteScope, cteStmt)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func addScopeWhereClause(scope journal.Scope, selectStmt *goqu.SelectDataset) *goqu.SelectDataset {
	if scope.MatchesEverything() {
		return selectStmt
	}

	expressions := make([]goqu.Expression, 0, 2)

	if eventTypes := scope.EventTypes(); len(eventTypes) > 0 {
		typeExpressions := make([]goqu.Expression, 0, len(eventTypes))
		for _, eventType := range eventTypes {
			typeExpressions = append(typeExpressions, goqu.Ex{colEventType: eventType})
		}

		expressions = append(expressions, goqu.Or(typeExpressions...))
	}

	if keys := scope.Keys(); len(keys) > 0 {
		keyExpressions := make([]goqu.Expression, 0, len(keys))
		for _, key := range keys {
			keyExpressions = append(
				keyExpressions,
				goqu.L(fmt.Sprintf(`%s @> '{"%s": "%s"}'`, colPayload, key.Name(), key.Value())),
			)
		}

		var keyExpressionList exp.ExpressionList
		if scope.MatchAllKeys() {
			keyExpressionList = goqu.And(keyExpressions...)
		} else {
			keyExpressionList = goqu.Or(keyExpressions...)
		}

		expressions = append(expressions, keyExpressionList)
	}

	return selectStmt.Where(goqu.And(expressions...))
}

func (j Journal) scanRows(rows db.Rows) (journal.StoredEvents, journal.SequenceNumber, error) {
	var (
		eventType  string
		occurredAt time.Time
		payload    []byte
		metadata   []byte
		sequence   journal.SequenceNumber
	)

	events := make(journal.StoredEvents, 0)
	maxSeq := journal.SequenceNumber(0)

	for rows.Next() {
		if scanErr := rows.Scan(&eventType, &occurredAt, &payload, &metadata, &sequence); scanErr != nil {
			j.logError("scanning journal row failed", scanErr, "")
			return nil, 0, errors.Join(journal.ErrScanningRowFailed, scanErr)
		}

		event, buildErr := journal.NewStoredEvent(eventType, occurredAt, payload, metadata)
		if buildErr != nil {
			j.logError("building stored event from row failed", buildErr, "")
			return nil, 0, errors.Join(journal.ErrScanningRowFailed, buildErr)
		}

		events = append(events, event)
		maxSeq = sequence
	}

	return events, maxSeq, nil
}

func (j Journal) closeRows(rows db.Rows) {
	if closeErr := rows.Close(); closeErr != nil && j.logger != nil {
		j.logger.Warn("closing journal rows failed", logAttrError, closeErr.Error())
	}
}

func (j Journal) logSQL(sqlQuery string, action string, duration time.Duration) {
	if j.logger != nil {
		j.logger.Debug(logMsgSQLExecuted,
			logAttrAction, action,
			logAttrDurationMS, durationToMilliseconds(duration),
			logAttrQuery, sqlQuery)
	}
}

func (j Journal) logInfo(msg string, args ...any) {
	if j.logger != nil {
		j.logger.Info(msg, args...)
	}
}

func (j Journal) logError(msg string, err error, sqlQuery string) {
	if j.logger == nil {
		return
	}

	if sqlQuery != "" {
		j.logger.Error(msg, logAttrError, err.Error(), logAttrQuery, sqlQuery)
		return
	}

	j.logger.Error(msg, logAttrError, err.Error())
}

func (j Journal) recordDuration(metric string, duration time.Duration) {
	if j.metricsCollector != nil {
		j.metricsCollector.RecordDuration(metric, duration, nil)
	}
}

func (j Journal) incrementCounter(metric string, labels map[string]string) {
	if j.metricsCollector != nil {
		j.metricsCollector.IncrementCounter(metric, labels)
	}
}

func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

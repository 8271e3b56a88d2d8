// Package postgresengine provides the PostgreSQL implementation of the loan
// journal, supporting pgxpool, database/sql and sqlx connection handles.
//
// Events are stored in a single append-only table (default "loan_events"):
//
//	CREATE TABLE loan_events (
//	    sequence_number BIGSERIAL PRIMARY KEY,
//	    event_type      TEXT                     NOT NULL,
//	    occurred_at     TIMESTAMP WITH TIME ZONE NOT NULL,
//	    payload         JSONB                    NOT NULL,
//	    metadata        JSONB                    NOT NULL
//	);
//	CREATE INDEX loan_events_payload_idx ON loan_events USING GIN (payload jsonb_path_ops);
//	CREATE INDEX loan_events_event_type_idx ON loan_events (event_type);
//
// Appends are atomic and guarded by optimistic concurrency: the insert only
// succeeds while the max sequence number of the rows matching the caller's
// scope still equals the value observed at query time. A lost race inserts
// zero rows and surfaces journal.ErrConcurrencyConflict.
//
// Usage:
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	jnl, _ := postgresengine.NewJournalFromPGXPool(pool,
//		postgresengine.WithLogger(logger),
//	)
//
//	events, maxSeq, _ := jnl.Query(ctx, scope)
//	err := jnl.Append(ctx, scope, maxSeq, newEvent)
package postgresengine

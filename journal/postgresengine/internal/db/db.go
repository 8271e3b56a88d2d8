// Package db wraps the supported database drivers behind one minimal
// interface so the journal engine can run on pgxpool, database/sql or sqlx
// connections without caring which one it was given.
package db

import (
	"context"
	"database/sql"
)

// Handle is the database access interface the journal engine needs.
type Handle interface {
	Query(ctx context.Context, query string) (Rows, error)
	Exec(ctx context.Context, query string) (Result, error)
}

// Rows iterates a query result.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
}

// Result reports the outcome of a statement execution.
type Result interface {
	RowsAffected() (int64, error)
}

// SQLHandle adapts a *sql.DB to the Handle interface.
type SQLHandle struct {
	db *sql.DB
}

// NewSQLHandle wraps a *sql.DB.
func NewSQLHandle(db *sql.DB) *SQLHandle {
	return &SQLHandle{db: db}
}

// Query runs a query through the underlying *sql.DB.
func (h *SQLHandle) Query(ctx context.Context, query string) (Rows, error) {
	rows, err := h.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdRows{rows: rows}, nil
}

// Exec runs a statement through the underlying *sql.DB.
func (h *SQLHandle) Exec(ctx context.Context, query string) (Result, error) {
	result, err := h.db.ExecContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdResult{result: result}, nil
}

// stdRows wraps *sql.Rows.
type stdRows struct {
	rows *sql.Rows
}

func (r *stdRows) Next() bool {
	return r.rows.Next()
}

func (r *stdRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *stdRows) Close() error {
	return r.rows.Close()
}

// stdResult wraps sql.Result.
type stdResult struct {
	result sql.Result
}

func (r *stdResult) RowsAffected() (int64, error) {
	return r.result.RowsAffected()
}

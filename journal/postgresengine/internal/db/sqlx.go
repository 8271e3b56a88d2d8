package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SQLXHandle adapts a *sqlx.DB to the Handle interface.
type SQLXHandle struct {
	db *sqlx.DB
}

// NewSQLXHandle wraps a *sqlx.DB.
func NewSQLXHandle(db *sqlx.DB) *SQLXHandle {
	return &SQLXHandle{db: db}
}

// Query runs a query through the underlying *sqlx.DB.
func (h *SQLXHandle) Query(ctx context.Context, query string) (Rows, error) {
	rows, err := h.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdRows{rows: rows}, nil
}

// Exec runs a statement through the underlying *sqlx.DB.
func (h *SQLXHandle) Exec(ctx context.Context, query string) (Result, error) {
	result, err := h.db.ExecContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdResult{result: result}, nil
}

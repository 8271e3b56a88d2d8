package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGXHandle adapts a *pgxpool.Pool to the Handle interface.
type PGXHandle struct {
	pool *pgxpool.Pool
}

// NewPGXHandle wraps a *pgxpool.Pool.
func NewPGXHandle(pool *pgxpool.Pool) *PGXHandle {
	return &PGXHandle{pool: pool}
}

// Query runs a query through the underlying pool.
func (h *PGXHandle) Query(ctx context.Context, query string) (Rows, error) {
	rows, err := h.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return &pgxRows{rows: rows}, nil
}

// Exec runs a statement through the underlying pool.
func (h *PGXHandle) Exec(ctx context.Context, query string) (Result, error) {
	tag, err := h.pool.Exec(ctx, query)
	if err != nil {
		return nil, err
	}

	return &pgxResult{tag: tag}, nil
}

// pgxRows wraps pgx.Rows.
type pgxRows struct {
	rows pgx.Rows
}

func (r *pgxRows) Next() bool {
	return r.rows.Next()
}

func (r *pgxRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *pgxRows) Close() error {
	r.rows.Close()
	return nil
}

// pgxResult wraps pgconn.CommandTag.
type pgxResult struct {
	tag pgconn.CommandTag
}

func (r *pgxResult) RowsAffected() (int64, error) {
	return r.tag.RowsAffected(), nil
}

// Package repository is the persistence layer. Each repository owns the SQL
// for one table and returns domain models; a missing row comes back as a
// sqlerr.NotFound error naming the table.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/hotel-booking/internal/sqlerr"
)

// DBTX is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// collectOne scans exactly one row into T, mapping pgx.ErrNoRows to
// sqlerr.NotFound(table).
func collectOne[T any](rows pgx.Rows, err error, table string) (*T, error) {
	if err != nil {
		return nil, err
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sqlerr.NotFound(table)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// collectAll scans every row into T. An empty result is an empty slice.
func collectAll[T any](rows pgx.Rows, err error) ([]*T, error) {
	if err != nil {
		return nil, err
	}

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}

// expectAffected turns a zero-row command into sqlerr.NotFound(table).
func expectAffected(tag pgconn.CommandTag, err error, table string) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound(table)
	}
	return nil
}

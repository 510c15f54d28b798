package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// stubDB satisfies database.PgxIface for repository tests. It records
// the last statement and returns the configured results.
type stubDB struct {
	lastSQL  string
	lastArgs []any

	execTag pgconn.CommandTag
	execErr error
	scanErr error
}

type stubRow struct {
	err error
}

func (r stubRow) Scan(dest ...any) error {
	return r.err
}

func (db *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.lastSQL = sql
	db.lastArgs = args
	return nil, errors.New("query not stubbed")
}

func (db *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.lastSQL = sql
	db.lastArgs = args
	return stubRow{err: db.scanErr}
}

func (db *stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.lastSQL = sql
	db.lastArgs = args
	return db.execTag, db.execErr
}

func (db *stubDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("begin not stubbed")
}

func (db *stubDB) Ping(ctx context.Context) error { return nil }

func (db *stubDB) Close() {}

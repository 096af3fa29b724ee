package store

import (
	"context"
	"database/sql"
	"errors"

	"langdetect/internal/platform/store/sqlite"
)

// sqliteAdapter wraps sqlite.SQLite and implements RowQuerier + TxRunner
// over database/sql, the generic surface any "prepared parameterised
// lookups" engine can satisfy
type sqliteAdapter struct {
	s *sqlite.SQLite
}

func newSQLiteAdapter(s *sqlite.SQLite) *sqliteAdapter { return &sqliteAdapter{s: s} }

func (a *sqliteAdapter) Ping(ctx context.Context) error {
	if a == nil || a.s == nil || a.s.DB == nil {
		return errors.New("sqlite: nil adapter")
	}
	return a.s.DB.PingContext(ctx)
}

func (a *sqliteAdapter) Close() error { return a.s.Close() }

func (a *sqliteAdapter) Exec(ctx context.Context, query string, args ...any) (CommandTag, error) {
	res, err := a.s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlTag{res}, nil
}

func (a *sqliteAdapter) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rs, err := a.s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rs}, nil
}

func (a *sqliteAdapter) QueryRow(ctx context.Context, query string, args ...any) Row {
	return sqlRow{a.s.DB.QueryRowContext(ctx, query, args...)}
}

func (a *sqliteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(sqlTxQuerier{tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// sqlRow/sqlRows/sqlTag adapt database/sql to our tiny Row/Rows/CommandTag

type sqlRow struct{ r *sql.Row }

func (x sqlRow) Scan(dst ...any) error { return x.r.Scan(dst...) }

type sqlRows struct{ r *sql.Rows }

func (x sqlRows) Next() bool            { return x.r.Next() }
func (x sqlRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x sqlRows) Err() error            { return x.r.Err() }
func (x sqlRows) Close()                { _ = x.r.Close() }
func (x sqlRows) Columns() []string {
	cols, err := x.r.Columns()
	if err != nil {
		return nil
	}
	return cols
}

type sqlTag struct{ res sql.Result }

func (t sqlTag) String() string { return "sqlite" }

func (t sqlTag) RowsAffected() int64 {
	n, _ := t.res.RowsAffected()
	return n
}

// sqlTxQuerier satisfies RowQuerier inside a database/sql transaction
type sqlTxQuerier struct{ tx *sql.Tx }

func (t sqlTxQuerier) Exec(ctx context.Context, query string, args ...any) (CommandTag, error) {
	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlTag{res}, nil
}

func (t sqlTxQuerier) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rs, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rs}, nil
}

func (t sqlTxQuerier) QueryRow(ctx context.Context, query string, args ...any) Row {
	return sqlRow{t.tx.QueryRowContext(ctx, query, args...)}
}

package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type txKey struct{}

// Transactor runs a function inside one database transaction. Repositories
// pick the transaction up from the context through Conn.
type Transactor struct {
	db *sqlx.DB
}

func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTx commits when fn returns nil and rolls back otherwise. Nested
// calls join the outer transaction.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// LockRegister serializes open, close and adjustment creation on the single
// register float. It must run inside WithinTx. On SQLite the single
// connection already serializes writers.
func (t *Transactor) LockRegister(ctx context.Context) error {
	conn := Conn(ctx, t.db)
	query := conn.Rebind(`SELECT name FROM register_locks WHERE name = ?` + ForUpdate(conn))
	var name string
	if err := sqlx.GetContext(ctx, conn, &name, query, "float"); err != nil {
		return fmt.Errorf("lock register: %w", err)
	}
	return nil
}

// Conn returns the transaction carried by ctx, or db.
func Conn(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

// ForUpdate returns the row-lock suffix for dialects that support it.
func ForUpdate(conn sqlx.ExtContext) string {
	if IsPostgres(conn.DriverName()) {
		return " FOR UPDATE"
	}
	return ""
}

// ForShare returns the shared row-lock suffix for dialects that support it.
func ForShare(conn sqlx.ExtContext) string {
	if IsPostgres(conn.DriverName()) {
		return " FOR SHARE"
	}
	return ""
}

package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqliteDriver = "sqlite"

func init() {
	sqlx.BindDriver(sqliteDriver, sqlx.QUESTION)
}

// NewSQLite opens a single-register database file. SQLite allows one
// writer, so the pool is pinned to one connection and every statement in a
// transaction must go through the transaction handle.
func NewSQLite(path string) (*sqlx.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sqlx.Connect(sqliteDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func IsPostgres(driverName string) bool {
	return driverName == "pgx" || driverName == "postgres"
}

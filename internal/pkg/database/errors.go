package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports a unique or primary key constraint failure on
// either supported driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr pgx.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		switch sqErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
		return sqErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqErr.Error(), "UNIQUE")
	}
	return false
}

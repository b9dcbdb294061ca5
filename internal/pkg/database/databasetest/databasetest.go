// Package databasetest opens migrated SQLite databases for tests.
package databasetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/jmoiron/sqlx"
)

// Open returns a freshly migrated database under t.TempDir().
func Open(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "shift.sqlite"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close sqlite: %v", err)
		}
	})
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

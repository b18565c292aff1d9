// Package testutil provides shared helpers for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/upliftapp/uplift/internal/db"
)

// DB opens a throwaway SQLite database in a per-test temp directory and runs
// the real migrations against it.
func DB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return database
}

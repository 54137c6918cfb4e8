// Package databasetest provides migrated in-memory databases for tests.
package databasetest

import (
	"testing"

	"starwars-server/internal/shared/database"
)

// New opens a private in-memory SQLite database, migrates models into it and
// closes it when the test finishes.
func New(t testing.TB, models ...interface{}) *database.DB {
	t.Helper()

	db, err := database.OpenSQLite("file::memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := db.RunMigrations(models...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

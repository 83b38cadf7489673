package testutil

import (
	"database/sql"
	"testing"

	"fleet_maintenance/internal/infrastructure/database"
)

// NewTestDB creates an in-memory SQLite database with the schema applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(db *sql.DB) database.UnitOfWork {
	return database.NewSQLiteUnitOfWork(db)
}

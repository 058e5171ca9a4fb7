// Package testdb provides a shared test database helper for fast,
// realistic testing against an in-memory SQLite database.
package testdb

import (
	"context"
	"testing"

	"github.com/punchlabs/punchup/infrastructure/persistence"
	"github.com/punchlabs/punchup/internal/database"
)

// New creates an in-memory SQLite database with the enriched joke table
// migrated. The database is automatically closed when the test finishes.
func New(t *testing.T) database.Database {
	return NewForTable(t, persistence.DefaultTableName)
}

// NewForTable creates an in-memory SQLite database with the enriched joke
// schema migrated into the given table.
func NewForTable(t *testing.T, table string) database.Database {
	t.Helper()
	db := NewPlain(t)
	if err := persistence.AutoMigrate(db, table); err != nil {
		t.Fatalf("testdb.NewForTable: auto migrate: %v", err)
	}
	return db
}

// NewPlain creates an in-memory SQLite database without running migrations.
// Useful for tests that manage their own schema.
func NewPlain(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite://:memory:")
	if err != nil {
		t.Fatalf("testdb.NewPlain: open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

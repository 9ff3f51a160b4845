// Package databasetest provides migrated SQLite databases for tests.
package databasetest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"

	"kentkonut/config"
	"kentkonut/pkg/database"
)

var memoryDBSeq atomic.Int64

// NewDB returns a migrated in-memory SQLite database private to the test
func NewDB(t testing.TB) *sqlx.DB {
	t.Helper()

	path := fmt.Sprintf("file:kk_test_%d?mode=memory&cache=shared", memoryDBSeq.Add(1))

	// the shared in-memory database lives while db holds a connection
	db, err := database.NewSQLiteConnection(path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.MigrateUp(config.DatabaseConfig{Driver: "sqlite", Path: path}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

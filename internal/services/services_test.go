package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/obiajulu/fintrack-be/internal/database"
)

// newTestDB opens a fresh in-memory database with the schema applied. A
// single connection keeps every query on the same in-memory instance.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err, "failed to create test database")
	db.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db), "failed to migrate test database")

	t.Cleanup(func() { db.Close() })
	return db
}

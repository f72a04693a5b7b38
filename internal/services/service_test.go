package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lmoralesc/code-journal-be/internal/database"
)

// newTestDB opens a migrated in-memory database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

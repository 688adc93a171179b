package testutils

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/fight-tracker/internal/repositories/fight"
	"github.com/KirkDiggler/fight-tracker/internal/sqlite"
)

// CreateTestFightDB opens a migrated SQLite database in a temp directory
func CreateTestFightDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "fights.db"), nil)
	require.NoError(t, err, "failed to open sqlite")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, fight.Migrate(context.Background(), db), "failed to migrate")

	return db
}

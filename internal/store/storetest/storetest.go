// Package storetest opens migrated throwaway databases for tests.
package storetest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/onlook-dev/fixpack-pipeline/internal/store"
	"github.com/stretchr/testify/require"
)

// NewSQLite returns a migrated SQLite database living in t.TempDir().
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "fixpack.db")
	db, err := store.Connect(context.Background(), store.DriverSQLite, dsn, store.DefaultServerOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, store.Migrate(context.Background(), db, store.DriverSQLite))
	return db
}

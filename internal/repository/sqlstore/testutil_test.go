package sqlstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestStore opens a fresh SQLite file with the schema applied.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "tracker.db") + "?_foreign_keys=on"

	store, err := Open(context.Background(), SQLite, dsn, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, ApplySchema(context.Background(), store.DB, SQLite, ""))
	return store
}

func ptr(v int64) *int64 {
	return &v
}

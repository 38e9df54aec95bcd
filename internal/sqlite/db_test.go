package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testMigrations = []Migration{
	{Version: 1, Name: "create_widgets", SQL: `CREATE TABLE widgets (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL)`},
	{Version: 2, Name: "widgets_name_idx", SQL: `CREATE INDEX idx_widgets_name ON widgets(name)`},
}

func TestOpenAndMigrate(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, "widgets", testMigrations, zap.NewNop()))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='widgets'`).Scan(&count))
	assert.Equal(t, 1, count)

	// second run must skip what is already applied
	require.NoError(t, Migrate(ctx, db, "widgets", testMigrations, zap.NewNop()))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_migrations WHERE component='widgets'`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestMigrate_ComponentsAreIndependent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, "widgets", testMigrations[:1], zap.NewNop()))
	require.NoError(t, Migrate(ctx, db, "gadgets", []Migration{
		{Version: 1, Name: "create_gadgets", SQL: `CREATE TABLE gadgets (id INTEGER PRIMARY KEY)`},
	}, zap.NewNop()))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, 2, count)
}

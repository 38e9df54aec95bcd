package users

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-user-orders/internal/sqlite"
)

func setupSQLiteRepo(t *testing.T) *SQLiteRepo {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, MigrateSQLite(context.Background(), db, zap.NewNop()))
	return &SQLiteRepo{DB: db}
}

func TestSQLiteRepo_CRUD(t *testing.T) {
	repo := setupSQLiteRepo(t)
	ctx := context.Background()

	u := User{Username: "john_doe", PasswordHash: "$argon2id$x", Email: "john@example.com"}
	require.NoError(t, repo.Save(ctx, &u))
	require.NotZero(t, u.ID)

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "john_doe", got.Username)
	assert.Equal(t, "$argon2id$x", got.PasswordHash)
	assert.Equal(t, "john@example.com", got.Email)

	byName, err := repo.FindByUsername(ctx, "john_doe")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byEmail, err := repo.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	u.Username = "johnny"
	require.NoError(t, repo.Save(ctx, &u))
	got, err = repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "johnny", got.Username)

	ok, err := repo.Exists(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx, u.ID))
	ok, err = repo.Exists(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.FindByID(ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, u.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Save(ctx, &u), ErrNotFound)
}

func TestSQLiteRepo_FindAllKeepsDuplicates(t *testing.T) {
	repo := setupSQLiteRepo(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		u := User{Username: "same", PasswordHash: "h", Email: "same@example.com"}
		require.NoError(t, repo.Save(ctx, &u))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Less(t, all[0].ID, all[1].ID)
}

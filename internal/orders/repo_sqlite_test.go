package orders

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-user-orders/internal/sqlite"
)

func setupSQLiteRepo(t *testing.T) *SQLiteRepo {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, MigrateSQLite(context.Background(), db, zap.NewNop()))
	return &SQLiteRepo{DB: db}
}

func TestSQLiteRepo_SaveAndFind(t *testing.T) {
	repo := setupSQLiteRepo(t)
	ctx := context.Background()

	o := Order{UserID: 7, Product: "Keyboard", Quantity: 3, Price: decimal.RequireFromString("49.999999999999999999")}
	require.NoError(t, repo.Save(ctx, &o))
	require.NotZero(t, o.ID)
	assert.False(t, o.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.UserID, got.UserID)
	assert.Equal(t, "Keyboard", got.Product)
	assert.Equal(t, 3, got.Quantity)
	assert.Equal(t, "49.999999999999999999", got.Price.String(), "price keeps every digit")

	ok, err := repo.Exists(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.FindByID(ctx, o.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
	ok, err = repo.Exists(ctx, o.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteRepo_Update(t *testing.T) {
	repo := setupSQLiteRepo(t)
	ctx := context.Background()

	o := Order{UserID: 1, Product: "Mouse", Quantity: 1, Price: decimal.RequireFromString("10")}
	require.NoError(t, repo.Save(ctx, &o))

	o.UserID, o.Product, o.Quantity, o.Price = 2, "Trackball", 4, decimal.RequireFromString("12.34")
	require.NoError(t, repo.Save(ctx, &o))

	got, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.UserID)
	assert.Equal(t, "Trackball", got.Product)
	assert.Equal(t, 4, got.Quantity)
	assert.Equal(t, "12.34", got.Price.String())

	ghost := Order{ID: 999, UserID: 1, Product: "x", Quantity: 1, Price: decimal.NewFromInt(1)}
	assert.ErrorIs(t, repo.Save(ctx, &ghost), ErrNotFound)
}

func TestSQLiteRepo_ListAndDelete(t *testing.T) {
	repo := setupSQLiteRepo(t)
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	for _, uid := range []int64{1, 2, 1} {
		o := Order{UserID: uid, Product: "Pen", Quantity: 1, Price: decimal.RequireFromString("1.50")}
		require.NoError(t, repo.Save(ctx, &o))
	}

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Less(t, all[0].ID, all[1].ID)

	mine, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	require.NoError(t, repo.Delete(ctx, all[0].ID))
	assert.ErrorIs(t, repo.Delete(ctx, all[0].ID), ErrNotFound)

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

package orders

import (
	"context"
	"database/sql"

	"github.com/ariefcatur/go-user-orders/internal/postgres"
	"github.com/ariefcatur/go-user-orders/internal/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const component = "orders"

var pgMigrations = []postgres.Migration{
	{Version: 1, Name: "create_orders", SQL: `
		CREATE TABLE IF NOT EXISTS orders (
			id         BIGSERIAL PRIMARY KEY,
			user_id    BIGINT NOT NULL,
			product    TEXT NOT NULL,
			quantity   INTEGER NOT NULL CHECK (quantity >= 1),
			price      NUMERIC NOT NULL CHECK (price > 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);`},
}

var sqliteMigrations = []sqlite.Migration{
	{Version: 1, Name: "create_orders", SQL: `
		CREATE TABLE IF NOT EXISTS orders (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    INTEGER NOT NULL,
			product    TEXT NOT NULL,
			quantity   INTEGER NOT NULL CHECK (quantity >= 1),
			price      TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);`},
}

func MigratePostgres(ctx context.Context, db *pgxpool.Pool, log *zap.Logger) error {
	return postgres.Migrate(ctx, db, component, pgMigrations, log)
}

func MigrateSQLite(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	return sqlite.Migrate(ctx, db, component, sqliteMigrations, log)
}

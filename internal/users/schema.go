package users

import (
	"context"
	"database/sql"

	"github.com/ariefcatur/go-user-orders/internal/postgres"
	"github.com/ariefcatur/go-user-orders/internal/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const component = "users"

// username and email are indexed but not unique: uniqueness is a service
// policy, off by default.
var pgMigrations = []postgres.Migration{
	{Version: 1, Name: "create_users", SQL: `
		CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			username      VARCHAR(50) NOT NULL,
			password_hash TEXT NOT NULL,
			email         TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);
		CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);`},
}

var sqliteMigrations = []sqlite.Migration{
	{Version: 1, Name: "create_users", SQL: `
		CREATE TABLE IF NOT EXISTS users (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			username      TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			email         TEXT NOT NULL,
			created_at    DATETIME NOT NULL,
			updated_at    DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);
		CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);`},
}

func MigratePostgres(ctx context.Context, db *pgxpool.Pool, log *zap.Logger) error {
	return postgres.Migrate(ctx, db, component, pgMigrations, log)
}

func MigrateSQLite(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	return sqlite.Migrate(ctx, db, component, sqliteMigrations, log)
}

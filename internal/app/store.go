// Package app wires config into the pieces each binary runs: the store,
// the event publisher and the HTTP server.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-user-orders/internal/config"
	"github.com/ariefcatur/go-user-orders/internal/postgres"
	"github.com/ariefcatur/go-user-orders/internal/sqlite"
)

// Store is an open database handle for the configured driver. Exactly one
// of PG and SQL is set.
type Store struct {
	Driver string
	PG     *pgxpool.Pool
	SQL    *sql.DB
}

// Migrations holds one component's migrate functions per driver.
type Migrations struct {
	Postgres func(context.Context, *pgxpool.Pool, *zap.Logger) error
	SQLite   func(context.Context, *sql.DB, *zap.Logger) error
}

func OpenStore(ctx context.Context, cfg config.Config, log *zap.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		log.Info("store opened", zap.String("driver", cfg.StoreDriver))
		return &Store{Driver: cfg.StoreDriver, PG: pool}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info("store opened", zap.String("driver", cfg.StoreDriver), zap.String("path", cfg.SQLitePath))
		return &Store{Driver: cfg.StoreDriver, SQL: db}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func (s *Store) Migrate(ctx context.Context, m Migrations, log *zap.Logger) error {
	if s.PG != nil {
		return m.Postgres(ctx, s.PG, log)
	}
	return m.SQLite(ctx, s.SQL, log)
}

func (s *Store) Close() {
	if s.PG != nil {
		s.PG.Close()
	}
	if s.SQL != nil {
		_ = s.SQL.Close()
	}
}

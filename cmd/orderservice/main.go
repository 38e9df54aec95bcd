package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-user-orders/internal/app"
	"github.com/ariefcatur/go-user-orders/internal/config"
	"github.com/ariefcatur/go-user-orders/internal/httpx"
	"github.com/ariefcatur/go-user-orders/internal/orders"
	"github.com/ariefcatur/go-user-orders/internal/redisx"
	"github.com/ariefcatur/go-user-orders/internal/userclient"
)

var migrations = app.Migrations{Postgres: orders.MigratePostgres, SQLite: orders.MigrateSQLite}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	cmd := &cobra.Command{
		Use:          "orderservice",
		Short:        "Order service: order CRUD validated against the user service",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	cmd.AddCommand(serve, newMigrateCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the store and serve the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := app.Bootstrap(config.OrderService)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := app.SignalContext()
			defer stop()

			store, err := app.OpenStore(ctx, cfg, log)
			if err != nil {
				log.Error("open store", zap.Error(err))
				return err
			}
			defer store.Close()
			if err := store.Migrate(ctx, migrations, log); err != nil {
				log.Error("migrate", zap.Error(err))
				return err
			}

			pub, stopPub := app.Publisher(cfg, log)
			defer stopPub()

			svc := &orders.Service{
				Repo:     orderRepo(store),
				Users:    userclient.New(cfg.UserServiceURL, cfg.UserServiceTimeout(), log),
				Events:   pub,
				Log:      log,
				Producer: cfg.ServiceName,
			}
			h := &httpx.OrdersHandler{Service: svc, Log: log}
			if rdb := app.Redis(ctx, cfg, log); rdb != nil {
				defer rdb.Close()
				h.Idem = &redisx.Idempotency{RDB: rdb}
			}

			router := httpx.NewRouter(log)
			h.Register(router)

			return app.Serve(ctx, cfg.HTTPAddr, router, log)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := app.Bootstrap(config.OrderService)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx := context.Background()
			store, err := app.OpenStore(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Migrate(ctx, migrations, log)
		},
	}
}

func orderRepo(s *app.Store) orders.Repository {
	if s.PG != nil {
		return &orders.PgRepo{DB: s.PG}
	}
	return &orders.SQLiteRepo{DB: s.SQL}
}

package app

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-user-orders/internal/config"
	"github.com/ariefcatur/go-user-orders/internal/events"
	"github.com/ariefcatur/go-user-orders/internal/orders"
)

func TestOpenStore_SQLite(t *testing.T) {
	cfg := config.Config{StoreDriver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "o.db")}
	ctx := context.Background()

	s, err := OpenStore(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	require.NotNil(t, s.SQL)
	assert.Nil(t, s.PG)
	require.NoError(t, s.Migrate(ctx, Migrations{Postgres: orders.MigratePostgres, SQLite: orders.MigrateSQLite}, zap.NewNop()))

	ok, err := (&orders.SQLiteRepo{DB: s.SQL}).Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), config.Config{StoreDriver: "mysql"}, zap.NewNop())
	assert.Error(t, err)
}

func TestPublisher_NoBrokers(t *testing.T) {
	p, stop := Publisher(config.Config{}, zap.NewNop())
	defer stop()
	assert.IsType(t, events.Nop{}, p)
}

func TestRedis_Disabled(t *testing.T) {
	assert.Nil(t, Redis(context.Background(), config.Config{}, zap.NewNop()))
}

func TestServe_StopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, addr, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}), zap.NewNop())
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

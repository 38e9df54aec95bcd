package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-user-orders/internal/config"
	"github.com/ariefcatur/go-user-orders/internal/events"
	kafkax "github.com/ariefcatur/go-user-orders/internal/kafka"
	"github.com/ariefcatur/go-user-orders/internal/redisx"
)

const shutdownTimeout = 5 * time.Second

// SignalContext is cancelled on SIGINT or SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// Publisher returns the kafka producer for cfg, or a no-op publisher when
// no brokers are configured. The returned stop func flushes pending events.
func Publisher(cfg config.Config, log *zap.Logger) (events.Publisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("kafka disabled, events are not published")
		return events.Nop{}, func() {}
	}
	p := kafkax.NewProducer(cfg.KafkaBrokers, 1024, log)
	p.Start()
	return p, func() {
		p.Close()
		p.WaitClosed()
	}
}

// Redis connects when REDIS_ADDR is set. A nil client means the feature
// depending on it is off.
func Redis(ctx context.Context, cfg config.Config, log *zap.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb, err := redisx.New(ctx, cfg.RedisAddr)
	if err != nil {
		log.Warn("redis unavailable, continuing without it", zap.Error(err))
		return nil
	}
	return rdb
}

// Serve runs h on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, h http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}

package main

import (
	"context"
	"errors"
	"os"

	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-user-orders/internal/app"
	"github.com/ariefcatur/go-user-orders/internal/config"
	kafkax "github.com/ariefcatur/go-user-orders/internal/kafka"
	"github.com/ariefcatur/go-user-orders/internal/orders"
	"github.com/ariefcatur/go-user-orders/internal/users"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:          "eventlog",
		Short:        "Consume user and order events and write them to the log",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := app.Bootstrap(config.EventLog)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if len(cfg.KafkaBrokers) == 0 {
				return errors.New("KAFKA_BROKERS is empty")
			}
			if cmd.Flags().Changed("workers") {
				cfg.EventLogWorkers = workers
			}

			ctx, stop := app.SignalContext()
			defer stop()

			topics := append(append([]string{}, users.Topics...), orders.Topics...)
			c := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.EventLogGroup, topics, cfg.EventLogWorkers, log)
			log.Info("eventlog consuming", zap.Strings("topics", topics), zap.String("group", cfg.EventLogGroup))
			return c.Start(ctx, logEvent(log))
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "number of handler goroutines")
	return cmd
}

// logEvent logs each envelope. Undecodable messages are logged and
// committed so they do not block the partition.
func logEvent(log *zap.Logger) kafkax.Handler {
	return func(_ context.Context, m kafka.Message) error {
		ev, err := kafkax.UnmarshalEnvelope(m.Value)
		if err != nil {
			log.Warn("skipping malformed event", zap.String("topic", m.Topic), zap.Int64("offset", m.Offset), zap.Error(err))
			return nil
		}
		log.Info("event",
			zap.String("topic", m.Topic),
			zap.String("event_type", ev.EventType),
			zap.String("event_id", ev.EventID),
			zap.String("entity_id", ev.CorrelationID),
			zap.String("trace_id", ev.TraceID),
			zap.String("producer", ev.Producer),
			zap.Time("occurred_at", ev.OccurredAt),
			zap.ByteString("payload", ev.Payload),
		)
		return nil
	}
}

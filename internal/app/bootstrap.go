package app

import (
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-user-orders/internal/config"
	"github.com/ariefcatur/go-user-orders/internal/logger"
)

// Bootstrap loads .env (if present) and the config for svc, and builds the
// logger from it.
func Bootstrap(svc config.Service) (config.Config, *zap.Logger, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(svc)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config: %w", err)
	}
	log, err := logger.New(logger.Options{
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Service: cfg.ServiceName,
	})
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, log, nil
}

// Package logger builds the zap logger used by every binary.
//
// Development (the default) writes colored console lines at debug level;
// production writes JSON at info level. LOG_LEVEL overrides either default.
// When a log file is configured, output goes to a rotated file instead of
// stdout.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Env     string // development | production
	Level   string
	File    string
	Service string
}

func New(o Options) (*zap.Logger, error) {
	prod := o.Env == "production"

	defLevel := zapcore.DebugLevel
	if prod {
		defLevel = zapcore.InfoLevel
	}
	level := defLevel
	if o.Level != "" {
		if l, err := zapcore.ParseLevel(o.Level); err == nil {
			level = l
		}
	}

	var enc zapcore.Encoder
	if prod {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "timestamp"
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeCaller = zapcore.ShortCallerEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = "time"
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.999")
		cfg.EncodeCaller = zapcore.ShortCallerEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	var out zapcore.WriteSyncer = zapcore.Lock(os.Stdout)
	if o.File != "" {
		out = zapcore.AddSync(&lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    100, // MB
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		})
	}

	l := zap.New(zapcore.NewCore(enc, out, zap.NewAtomicLevelAt(level)),
		zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if o.Service != "" {
		l = l.With(zap.String("service", o.Service))
	}
	return l, nil
}

// Nop is used by tests and by components built without a logger.
func Nop() *zap.Logger { return zap.NewNop() }

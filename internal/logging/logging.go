// Package logging builds the service zap logger and adapts it to cache
// operation events.
package logging

import (
	"context"
	"fmt"
	"os"
	"time"

	cache "github.com/goforj/flexcache"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger writing to stdout at level in the given format
// ("console" or "json").
func New(level, format string) (*zap.Logger, error) {
	return newLogger(level, format, zapcore.AddSync(os.Stdout))
}

func newLogger(level, format string, out zapcore.WriteSyncer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	switch format {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	core := zapcore.NewCore(encoder, out, lvl)
	return zap.New(core, zap.AddCaller()), nil
}

// CacheObserver logs every cache operation at debug level and failed
// operations at warn level.
func CacheObserver(logger *zap.Logger) cache.Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("cache")
	return cache.ObserverFunc(func(_ context.Context, op string, key string, hit bool, err error, dur time.Duration, driver cache.Driver) {
		fields := []zap.Field{
			zap.String("op", op),
			zap.String("driver", string(driver)),
			zap.Duration("duration", dur),
		}
		if key != "" {
			fields = append(fields, zap.String("key", key))
		}
		if op == "get" {
			fields = append(fields, zap.Bool("hit", hit))
		}
		if err != nil {
			logger.Warn("cache operation failed", append(fields, zap.Error(err))...)
			return
		}
		logger.Debug("cache operation", fields...)
	})
}

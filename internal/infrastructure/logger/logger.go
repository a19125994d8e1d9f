package logger

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"agentsync/server/internal/config"
	"agentsync/server/internal/utils/apperrors"
)

var (
	mu           sync.Mutex
	globalLogger *zerolog.Logger
)

// GetLogger returns the process-wide logger. Before Setup has run it
// falls back to console output at info level so boot-time call sites
// still produce readable lines.
func GetLogger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		fallback := consoleLogger().Level(zerolog.InfoLevel)
		globalLogger = &fallback
	}
	return *globalLogger
}

// Setup configures the process-wide logger from the loaded
// configuration. Every line carries the service name so output
// aggregated across deployments stays attributable.
func Setup(cfg *config.Config) (zerolog.Logger, error) {
	ctx := context.Background()

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.Logger{}, apperrors.NewError(ctx, apperrors.LayerInfrastructure, apperrors.ErrorTypeValidation,
			"unknown log level "+cfg.LogLevel, err, "dded0678-e875-4ead-85d8-0a09f3581a5a")
	}

	var base zerolog.Logger
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		base = zerolog.New(os.Stdout).With().Timestamp().Logger()
	case "console":
		base = consoleLogger()
	default:
		return zerolog.Logger{}, apperrors.NewError(ctx, apperrors.LayerInfrastructure, apperrors.ErrorTypeValidation,
			"unknown log format "+cfg.LogFormat, nil, "b1a5de54-9699-48d1-8b4d-e3b6c1a4532f")
	}

	log := base.With().Str("service", cfg.ServiceName).Logger().Level(lvl)
	zerolog.SetGlobalLevel(lvl)

	mu.Lock()
	globalLogger = &log
	mu.Unlock()

	return log, nil
}

func consoleLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).With().Timestamp().Logger()
}

package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/config"
)

// Setup installs the global slog logger with the configured level and a
// service label on every record.
func Setup(cfg *config.LoggingConfig, serviceName string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})

	logger := slog.New(handler).With("service", serviceName)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

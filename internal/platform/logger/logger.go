package logger

import (
	"log/slog"
	"os"
)

// New returns a structured JSON logger writing to stdout. The level is
// controlled by SORTCHECK_LOG_LEVEL ("debug", "info", "warn", "error").
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	}))
}

func levelFromEnv() slog.Level {
	switch os.Getenv("SORTCHECK_LOG_LEVEL") {
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

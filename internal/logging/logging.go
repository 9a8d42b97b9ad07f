// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/ArowuTest/nft-raffle-backend/internal/config"
	"golang.org/x/exp/slog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel maps debug/info/warn/error to a slog level; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Writer returns stderr, or a rotating file when cfg.File is set.
func Writer(cfg config.LogConfig) io.Writer {
	if cfg.File == "" {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
}

// Setup installs a JSON slog handler as the default logger and returns it.
func Setup(cfg config.LogConfig) *slog.Logger {
	return SetupWriter(Writer(cfg), cfg.Level)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, level string) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
	slog.SetDefault(logger)
	return logger
}

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process settings read from the environment.
type Config struct {
	Port            string
	LogLevel        slog.Level
	LogFormat       string
	ShutdownTimeout time.Duration
}

const (
	defaultPort            = "8080"
	defaultShutdownTimeout = 5 * time.Second

	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Load reads env files and then the process environment. With no files
// named, ./.env is read when present; named files must exist.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading env file: %w", err)
		}
	}

	cfg := Config{
		Port:            defaultPort,
		LogLevel:        slog.LevelInfo,
		LogFormat:       LogFormatText,
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
		}
	}

	if format := strings.ToLower(os.Getenv("LOG_FORMAT")); format != "" {
		if format != LogFormatText && format != LogFormatJSON {
			return Config{}, fmt.Errorf("invalid LOG_FORMAT %q: want %s or %s", format, LogFormatText, LogFormatJSON)
		}
		cfg.LogFormat = format
	}

	if timeout := os.Getenv("SHUTDOWN_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q", timeout)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// NewLogger builds the process logger writing to w.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

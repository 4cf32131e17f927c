package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/tdeecalc/internal/ctxlog"
	"github.com/specialistvlad/tdeecalc/internal/hcl"
)

// SettingsLoader reads an optional settings file.
type SettingsLoader interface {
	Load(ctx context.Context, path string) (*hcl.Settings, error)
}

// Streams are the process's standard streams. Logs go to Err so that Out
// carries only the dialogue and the report.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	streams Streams
	logger  *slog.Logger
	config  *Config
}

// NewApp is the constructor for the main application. It loads the settings
// file when one is configured, resolves the final configuration and builds
// the application's own logger.
func NewApp(ctx context.Context, streams Streams, cfg *Config, loader SettingsLoader) (*App, error) {
	var settings *hcl.Settings
	if cfg.SettingsPath != "" {
		var err error
		settings, err = loader.Load(ctx, cfg.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
	}

	resolved, err := cfg.Resolve(settings)
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	logger := newLogger(resolved.LogLevel, resolved.LogFormat, streams.Err)
	logger.Debug("Logger configured successfully.", "level", resolved.LogLevel, "format", resolved.LogFormat)

	return &App{
		streams: streams,
		logger:  logger,
		config:  resolved,
	}, nil
}

// Config returns the resolved configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

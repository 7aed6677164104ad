package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"spinekit/internal/config"
	"spinekit/internal/ctxlog"
)

// DescriptionLoader turns a description path into the format-agnostic model.
// The HCL loader is the production implementation.
type DescriptionLoader interface {
	Load(ctx context.Context, path string) (*config.Model, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	model  *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a loaded,
// validated structure description. A failure to load the description is a
// fatal startup error, so it panics; the entrypoint recovers.
func NewApp(outW io.Writer, appConfig *Config, loader DescriptionLoader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model := config.Default()
	if appConfig.DescriptionPath != "" {
		loaded, err := loader.Load(ctx, appConfig.DescriptionPath)
		if err != nil {
			panic(fmt.Errorf("failed to load structure description: %w", err))
		}
		model = loaded
		logger.Debug("Description loaded.", "path", appConfig.DescriptionPath)
	} else {
		logger.Debug("No description path provided, using built-in defaults.")
	}

	if appConfig.Segments >= 0 {
		model.Spine.Segments = appConfig.Segments
		logger.Debug("Segment count overridden.", "segments", appConfig.Segments)
	}

	return &App{
		outW:   outW,
		logger: logger,
		model:  model,
	}
}

// Model returns the loaded structure description. This is primarily for
// testing.
func (a *App) Model() *config.Model {
	return a.model
}

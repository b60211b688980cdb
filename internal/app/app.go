package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/oplcutils/gluegen/internal/config"
	"github.com/oplcutils/gluegen/internal/ctxlog"
)

// App encapsulates one generator run: the merged configuration, the logger,
// and the writer debug dumps go to.
type App struct {
	logW   io.Writer
	logger *slog.Logger
	model  config.Model
	dump   bool
}

// New constructs the application: it builds the run's logger, loads the
// optional settings file, and layers the CLI overrides on top.
func New(logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model := config.Default()
	if cfg.ConfigPath != "" {
		var err error
		model, err = config.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
	}

	if cfg.InputPath != "" {
		model.InputPath = cfg.InputPath
	}
	if cfg.OutputPath != "" {
		model.OutputPath = cfg.OutputPath
	}
	if cfg.BufferSize > 0 {
		model.BufferSize = cfg.BufferSize
	}
	if cfg.OnSlotCollision != "" {
		model.OnSlotCollision = cfg.OnSlotCollision
	}
	if cfg.OnMinorOverflow != "" {
		model.OnMinorOverflow = cfg.OnMinorOverflow
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Debug("Configuration merged.",
		"input", model.InputPath,
		"output", model.OutputPath,
		"buffer_size", model.BufferSize,
	)

	return &App{
		logW:   logW,
		logger: logger,
		model:  model,
		dump:   cfg.Dump,
	}, nil
}

// Model returns the merged configuration. This is primarily for testing.
func (a *App) Model() config.Model {
	return a.model
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/mathgrid/internal/config"
	"github.com/specialistvlad/mathgrid/internal/ctxlog"
	"github.com/specialistvlad/mathgrid/internal/dag"
	"github.com/specialistvlad/mathgrid/internal/node"
	"github.com/specialistvlad/mathgrid/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
	width    node.Width
	policy   dag.PlaceholderPolicy
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. When cfg names a settings file it is read with
// loader and merged into cfg before anything else is derived from it.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", uuid.NewString())
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if cfg.ConfigPath != "" {
		if loader == nil {
			return nil, fmt.Errorf("settings file %s given but no loader configured", cfg.ConfigPath)
		}
		model, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		if err := cfg.ApplySettings(model); err != nil {
			return nil, err
		}
		logger.Debug("Settings file merged into configuration.", "path", cfg.ConfigPath)
	}

	width, err := node.ParseWidth(cfg.Width)
	if err != nil {
		return nil, err
	}
	policy, err := dag.ParsePlaceholderPolicy(cfg.Placeholders)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All operator modules registered.", "count", len(modules), "symbols", reg.Symbols())

	if err := reg.ValidateRegistry(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
		width:    width,
		policy:   policy,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Config returns the merged configuration the app runs with.
func (a *App) Config() *Config {
	return a.config
}

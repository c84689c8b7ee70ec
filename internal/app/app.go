package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/actiongraph/internal/builder"
	"github.com/vk/actiongraph/internal/config"
	"github.com/vk/actiongraph/internal/ctxlog"
	"github.com/vk/actiongraph/internal/engine"
	"github.com/vk/actiongraph/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	cfg       *Config
	registry  *registry.Registry
	model     *config.Model
	converter config.Converter
	engine    *engine.Engine
}

// NewApp is the constructor for the main application. It loads the graph
// files, registers the relationship modules (the core modules when none are
// given) and builds the hypergraph. Query results go to outW, logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, converter, err := loader.Load(ctx, cfg.GraphPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.Load(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules), "relationships", len(reg.Names()))

	g, err := builder.Build(ctx, model, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to build hypergraph: %w", err)
	}

	return &App{
		outW:      outW,
		logger:    logger,
		cfg:       cfg,
		registry:  reg,
		model:     model,
		converter: converter,
		engine:    engine.New(g),
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Engine returns the query engine over the loaded hypergraph.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/protgraph/internal/config"
	"github.com/vk/protgraph/internal/ctxlog"
	"github.com/vk/protgraph/internal/engine"
	"github.com/vk/protgraph/internal/tableio"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	model   *config.Model
	engine  *engine.Engine
	metrics *metrics

	healthcheckPort int
	httpServer      *http.Server
	httpAddr        string
}

// New is the constructor for the main application. It loads the
// configuration, reads every table and builds the engine. Query results are
// written to outW and logs to logW. A missing or malformed table is reported
// as a *graphstore.DataLoadError.
func New(ctx context.Context, outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	var configPaths []string
	if cfg.ConfigPath != "" {
		configPaths = append(configPaths, cfg.ConfigPath)
	}
	model, err := loader.Load(ctx, configPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.", "dataset", model.Dataset.Name)

	kind, err := model.Dataset.ProteinKind()
	if err != nil {
		return nil, fmt.Errorf("invalid dataset configuration: %w", err)
	}

	store, err := tableio.Load(ctx, tableio.Paths{
		ProteinNodes:      model.Dataset.ProteinNodes,
		GoTermNodes:       model.Dataset.GoTermNodes,
		Edges:             model.Dataset.Edges,
		IdentifierRecords: model.Dataset.IdentifierRecords,
	})
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(ctx, store, engine.WithProteinKind(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to build engine: %w", err)
	}

	m := newMetrics()
	m.setIndexSizes(eng.Stats())

	port := model.Server.HealthcheckPort
	if cfg.HealthcheckPort > 0 {
		port = cfg.HealthcheckPort
	}

	return &App{
		outW:            outW,
		logger:          logger,
		config:          cfg,
		model:           model,
		engine:          eng,
		metrics:         m,
		healthcheckPort: port,
	}, nil
}

// Engine returns the application's query engine. This is primarily for testing.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

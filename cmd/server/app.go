package main

import (
	"fmt"
	"log/slog"

	"github.com/tracklet/tracker-api/internal/config"
	"github.com/tracklet/tracker-api/internal/platform/logger"
	"github.com/tracklet/tracker-api/internal/platform/memstore"
	"github.com/tracklet/tracker-api/internal/store"
)

// application holds the server's configuration and wired dependencies.
// Stores are interfaces so a persistent backend can replace the in-memory
// one without touching the handlers.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	taskStore  store.TaskStore
	habitStore store.HabitStore
}

// newApplication loads configuration, configures logging and builds the
// application's dependency graph.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return &application{
		config:     cfg,
		logger:     appLogger,
		taskStore:  memstore.NewTaskStore(),
		habitStore: memstore.NewHabitStore(),
	}, nil
}

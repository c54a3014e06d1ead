package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/confluentinc/quickstart-streaming-agents/internal/labs"
)

// App encapsulates the documentation pipeline's dependencies, configuration,
// and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	manifest labs.Manifest
	now      func() time.Time
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and lab manifest.
func NewApp(outW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)

	manifest, err := labs.LoadManifest(cfg.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load lab manifest: %w", err)
	}
	logger.Debug("Lab manifest loaded.", "lab_count", len(manifest.Labs))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		manifest: manifest,
		now:      time.Now,
	}, nil
}

// Manifest returns the application's lab manifest. This is primarily for
// testing.
func (a *App) Manifest() labs.Manifest {
	return a.manifest
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/meshsweep/internal/ctxlog"
	"github.com/vk/meshsweep/internal/mesher"
	"github.com/vk/meshsweep/internal/registry"
	"github.com/vk/meshsweep/internal/sweep"
)

// Loader is the interface for a sweep definition loader. The HCL loader is
// the only production implementation.
type Loader interface {
	Load(ctx context.Context, paths ...string) ([]*sweep.Sweep, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	runner   mesher.Runner
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, the compiled-in
// sweeps registered, and any file-defined sweeps loaded. Startup failures
// are programmer or definition errors, so they panic; the entrypoint
// recovers them into a clean exit message.
func NewApp(outW io.Writer, cfg *Config, loader Loader, sources ...registry.Source) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(sources) == 0 {
		sources = coreSweeps
	}
	for _, src := range sources {
		if err := src.Register(reg); err != nil {
			panic(fmt.Errorf("failed to register compiled-in sweep: %w", err))
		}
	}
	logger.Debug("Compiled-in sweeps registered.", "count", len(sources))

	if cfg.SweepPath != "" {
		loaded, err := loader.Load(ctx, cfg.SweepPath)
		if err != nil {
			panic(fmt.Errorf("failed to load sweep definitions: %w", err))
		}
		for _, s := range loaded {
			if err := reg.Register(s); err != nil {
				panic(fmt.Errorf("failed to register sweep definitions: %w", err))
			}
		}
		logger.Debug("File-defined sweeps registered.", "count", len(loaded))
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

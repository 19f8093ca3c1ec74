package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/meshsweep/internal/ctxlog"
	"github.com/vk/meshsweep/internal/executor"
	"github.com/vk/meshsweep/internal/mesher"
	"github.com/vk/meshsweep/internal/sweep"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	sweeps, err := a.resolve(cfg.Requested)
	if err != nil {
		return err
	}

	var invs []sweep.Invocation
	for _, s := range sweeps {
		expanded, err := s.Expand()
		if err != nil {
			return fmt.Errorf("failed to expand sweep %q: %w", s.Name, err)
		}
		a.logger.Debug("Sweep expanded.", "sweep", s.Name, "invocations", len(expanded))
		invs = append(invs, expanded...)
	}

	if len(invs) == 0 {
		a.logger.Warn("No invocations to run.")
		return nil
	}

	a.logger.Info("🚀 Starting sweep run...",
		"sweeps", len(sweeps), "invocations", len(invs),
		"workers", cfg.Workers, "fail_fast", cfg.FailFast, "dry_run", cfg.DryRun)

	exec := executor.New(a.newRunner(cfg), cfg.Workers, cfg.FailFast, a.outW)
	results := exec.Run(ctx, invs)

	succeeded, failed, skipped := executor.Tally(results)
	a.logger.Info("🏁 Sweep run finished.",
		"succeeded", succeeded, "failed", failed, "skipped", skipped)

	if failed > 0 {
		return fmt.Errorf("%d of %d invocations failed", failed, len(invs))
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolve maps requested sweep names to definitions. An empty request means
// every registered sweep, in registration order.
func (a *App) resolve(requested []string) ([]*sweep.Sweep, error) {
	names := requested
	if len(names) == 0 {
		names = a.registry.Names()
	}

	out := make([]*sweep.Sweep, 0, len(names))
	for _, name := range names {
		s, ok := a.registry.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown sweep %q (known sweeps: %s)", name, strings.Join(a.registry.Names(), ", "))
		}
		out = append(out, s)
	}
	return out, nil
}

// newRunner picks the execution backend for this run. A runner injected via
// UseRunner always wins, then dry-run, then the real tool.
func (a *App) newRunner(cfg *Config) mesher.Runner {
	if a.runner != nil {
		return a.runner
	}
	if cfg.DryRun {
		return mesher.DryRunner{}
	}
	return &mesher.ExecRunner{
		Path:   cfg.MesherPath,
		OutDir: cfg.OutDir,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

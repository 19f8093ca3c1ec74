package mesher

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/vk/meshsweep/internal/ctxlog"
	"github.com/vk/meshsweep/internal/sweep"
)

// Runner invokes the external mesh generator once per invocation. The
// executor depends on this interface so tests can record invocations
// instead of spawning processes.
type Runner interface {
	Run(ctx context.Context, inv sweep.Invocation) error
}

// ExecRunner shells out to the geoToH5 executable. The tool's own stdout
// and stderr pass through unchanged; this runner adds no diagnostic
// context of its own to them.
type ExecRunner struct {
	// Path is the executable name or path, resolved via $PATH as usual.
	Path string

	// OutDir, when set, is joined onto every output filename. The bare
	// filename in the invocation is what downstream consumers key on, so
	// it is never rewritten, only prefixed.
	OutDir string

	Stdout io.Writer
	Stderr io.Writer
}

// argv builds the three-argument command line the tool expects: geometry
// input path, output mesh path, and the -setnumber override string as a
// single argument.
func (r *ExecRunner) argv(inv sweep.Invocation) []string {
	out := inv.OutFile
	if r.OutDir != "" && r.OutDir != "." {
		out = filepath.Join(r.OutDir, inv.OutFile)
	}
	return []string{r.Path, inv.GeoFile, out, inv.Options}
}

// Run executes one mesh generation, blocking until the tool exits.
func (r *ExecRunner) Run(ctx context.Context, inv sweep.Invocation) error {
	args := r.argv(inv)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("mesher failed for %s: %w", inv.OutFile, err)
	}
	return nil
}

// DryRunner logs every invocation instead of spawning the tool.
type DryRunner struct{}

// Run logs the would-be command line and returns nil.
func (DryRunner) Run(ctx context.Context, inv sweep.Invocation) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Dry run, skipping invocation.", "geo", inv.GeoFile, "out", inv.OutFile, "options", inv.Options)
	return nil
}

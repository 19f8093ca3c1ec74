package hclconf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/meshsweep/internal/ctxlog"
	"github.com/vk/meshsweep/internal/fsutil"
	"github.com/vk/meshsweep/internal/sweep"
)

// Loader reads sweep definitions from .hcl files.
type Loader struct{}

// NewLoader creates a new HCL sweep loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file reachable from the given paths and translates
// each sweep block into the format-agnostic model. Files load in sorted
// path order, so the resulting sweep order is deterministic.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*sweep.Sweep, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered sweep definition files.", "count", len(files))

	parser := hclparse.NewParser()
	var sweeps []*sweep.Sweep

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse sweep file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode sweep file %s: %w", file, diags)
		}

		for _, block := range root.Sweeps {
			s, err := translateSweep(block)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			sweeps = append(sweeps, s)
		}
	}

	logger.Debug("HCL loading complete.", "sweeps", len(sweeps))
	return sweeps, nil
}

// findAllHCLFiles resolves each path to a flat list of .hcl files. Sweep
// paths are always user-supplied, never defaulted, so a missing path or a
// file without the .hcl extension is an error rather than a silent no-op.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing sweep path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				if _, wasSeen := seen[f]; !wasSeen {
					allFiles = append(allFiles, f)
					seen[f] = struct{}{}
				}
			}
		} else {
			if filepath.Ext(path) != ".hcl" {
				return nil, fmt.Errorf("sweep path %s is not an .hcl file", path)
			}
			if _, wasSeen := seen[path]; !wasSeen {
				allFiles = append(allFiles, path)
				seen[path] = struct{}{}
			}
		}
	}
	return allFiles, nil
}

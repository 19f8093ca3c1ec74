package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/meshsweep/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("meshsweep", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
meshsweep - drives an external mesh generator across parameter sweeps.

Usage:
  meshsweep [options] [SWEEP ...]

Arguments:
  SWEEP
    Names of sweeps to run. Built-in sweeps: study12, ring. Additional
    sweeps come from --sweeps definitions. With no names, every known
    sweep runs.

Options:
`)
		flagSet.PrintDefaults()
	}

	sweepsFlag := flagSet.String("sweeps", "", "Path to a sweep definition .hcl file or directory.")
	sFlag := flagSet.String("s", "", "Path to a sweep definition .hcl file or directory (shorthand).")
	mesherFlag := flagSet.String("mesher", "geoToH5", "The mesh-generator executable to invoke.")
	outDirFlag := flagSet.String("out-dir", ".", "Directory generated mesh files are written into.")
	workersFlag := flagSet.Int("workers", 1, "Number of concurrent invocations. 1 runs strictly sequentially.")
	failFastFlag := flagSet.Bool("fail-fast", false, "Stop scheduling invocations after the first failure.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Log the invocations without running the mesh generator.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	sweepPath := *sweepsFlag
	if sweepPath == "" {
		sweepPath = *sFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SweepPath:  sweepPath,
		Requested:  flagSet.Args(),
		MesherPath: *mesherFlag,
		OutDir:     *outDirFlag,
		Workers:    *workersFlag,
		FailFast:   *failFastFlag,
		DryRun:     *dryRunFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

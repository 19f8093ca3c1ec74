package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SweepPath string   // optional .hcl file or directory of sweep definitions
	Requested []string // sweep names to run; empty means every known sweep

	MesherPath string // the external mesh-generator executable
	OutDir     string // directory output filenames are written under

	Workers  int  // executor concurrency; 1 means strictly sequential
	FailFast bool // cancel the run after the first failure
	DryRun   bool // expand and log without spawning the tool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it, applying no defaults: the
// CLI layer owns those.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.MesherPath == "" {
		return nil, errors.New("MesherPath is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 1 {
		return nil, errors.New("Workers must be at least 1")
	}
	return &cfg, nil
}

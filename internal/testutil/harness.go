package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/meshsweep/internal/app"
	"github.com/vk/meshsweep/internal/hclconf"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	Recorder  *Recorder
}

// RunSweepTest provides a standardized harness for running integration
// tests: it writes the given sweep definition files to a temp directory,
// builds the app around a recording mesher, and runs it end to end.
func RunSweepTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunSweepTestWithRecorder(context.Background(), t, files, cfg, NewRecorder())
}

// RunSweepTestWithRecorder is RunSweepTest with a caller-prepared Recorder,
// for tests that pre-seed failures or delays.
func RunSweepTestWithRecorder(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, rec *Recorder) *HarnessResult {
	t.Helper()

	if len(files) > 0 {
		tmpDir := t.TempDir()
		for name, content := range files {
			filePath := filepath.Join(tmpDir, name)
			require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
			require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
		}
		cfg.SweepPath = tmpDir
	}

	if cfg.MesherPath == "" {
		cfg.MesherPath = "geoToH5"
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, &cfg, hclconf.NewLoader())
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
			Recorder:  rec,
		}
	}

	testApp.UseRunner(rec)
	runErr := testApp.Run(ctx, &cfg)

	if os.Getenv("MESHSWEEP_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		Recorder:  rec,
	}
}

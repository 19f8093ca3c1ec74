package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/vk/meshsweep/internal/sweep"
)

// Recorder is a mesher.Runner that records every invocation instead of
// spawning the external tool.
type Recorder struct {
	mu    sync.Mutex
	calls []sweep.Invocation

	// FailOn maps output filenames to the error Run returns for them.
	FailOn map[string]error

	// Delay, when set, makes every Run sleep before recording. Concurrency
	// tests use it to hold workers busy.
	Delay time.Duration
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{FailOn: make(map[string]error)}
}

// Run implements mesher.Runner.
func (r *Recorder) Run(ctx context.Context, inv sweep.Invocation) error {
	if r.Delay > 0 {
		select {
		case <-time.After(r.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r.mu.Lock()
	r.calls = append(r.calls, inv)
	r.mu.Unlock()

	if err, ok := r.FailOn[inv.OutFile]; ok {
		return err
	}
	return nil
}

// Calls returns a copy of the recorded invocations in arrival order.
func (r *Recorder) Calls() []sweep.Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sweep.Invocation, len(r.calls))
	copy(out, r.calls)
	return out
}

// OutFiles returns just the recorded output filenames, in arrival order.
func (r *Recorder) OutFiles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	for i, inv := range r.calls {
		out[i] = inv.OutFile
	}
	return out
}

package executor

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/vk/meshsweep/internal/mesher"
	"github.com/vk/meshsweep/internal/sweep"
)

// Result records the outcome of one invocation.
type Result struct {
	Invocation sweep.Invocation
	Skipped    bool
	Err        error
	Duration   time.Duration
}

// Executor dispatches independent invocations to a pool of workers. With a
// single worker, the default, invocations run strictly sequentially in
// list order.
type Executor struct {
	runner   mesher.Runner
	workers  int
	failFast bool
	echoW    io.Writer
}

// New creates an Executor. Worker counts below one are clamped to one.
func New(runner mesher.Runner, workers int, failFast bool, echoW io.Writer) *Executor {
	if workers < 1 {
		workers = 1
	}
	return &Executor{
		runner:   runner,
		workers:  workers,
		failFast: failFast,
		echoW:    echoW,
	}
}

// job pairs an invocation with its slot in the results slice, so workers
// write disjoint indices without coordination.
type job struct {
	idx int
	inv sweep.Invocation
}

// Run executes every invocation and returns one Result per invocation, in
// input order. A failure never stops the run unless fail-fast was
// requested, in which case the remaining queue drains as skipped.
func (e *Executor) Run(ctx context.Context, invs []sweep.Invocation) []Result {
	results := make([]Result, len(invs))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job)
	var wg sync.WaitGroup
	wg.Add(e.workers)
	for w := 0; w < e.workers; w++ {
		go func(workerID int) {
			defer wg.Done()
			e.worker(ctx, jobs, cancel, results, workerID)
		}(w)
	}

	for i, inv := range invs {
		jobs <- job{idx: i, inv: inv}
	}
	close(jobs)
	wg.Wait()

	return results
}

// Tally counts the outcomes in a result set.
func Tally(results []Result) (succeeded, failed, skipped int) {
	for _, r := range results {
		switch {
		case r.Skipped:
			skipped++
		case r.Err != nil:
			failed++
		default:
			succeeded++
		}
	}
	return succeeded, failed, skipped
}

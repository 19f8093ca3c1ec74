package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/meshsweep/internal/ctxlog"
)

// worker is the core processing loop for a single concurrent worker. It
// keeps draining the job channel after cancellation so the feeder never
// blocks; drained jobs are recorded as skipped.
func (e *Executor) worker(ctx context.Context, jobs <-chan job, cancel context.CancelFunc, results []Result, workerID int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for j := range jobs {
		workerLogger := logger.With("workerID", workerID, "out", j.inv.OutFile)

		if ctx.Err() != nil {
			results[j.idx] = Result{Invocation: j.inv, Skipped: true, Err: ctx.Err()}
			workerLogger.Debug("Skipping invocation, run cancelled.")
			continue
		}

		if j.inv.Echo {
			fmt.Fprintln(e.echoW, j.inv.OutFile)
		}

		workerLogger.Info("▶️ Starting invocation", "geo", j.inv.GeoFile, "options", j.inv.Options)
		start := time.Now()
		err := e.runner.Run(ctx, j.inv)
		elapsed := time.Since(start)

		results[j.idx] = Result{Invocation: j.inv, Err: err, Duration: elapsed}
		if err != nil {
			workerLogger.Error("Invocation failed.", "error", err, "duration", elapsed)
			if e.failFast {
				cancel()
			}
			continue
		}
		workerLogger.Info("✅ Finished invocation", "duration", elapsed)
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}

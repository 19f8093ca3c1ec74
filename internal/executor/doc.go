// Package executor runs a flat list of mesh-generator invocations through
// a fixed-size worker pool. Invocations never depend on each other, so
// there is no graph to schedule: the only policies are the worker count
// (one by default, preserving the original strictly sequential behavior)
// and whether a failure cancels the rest of the run.
package executor

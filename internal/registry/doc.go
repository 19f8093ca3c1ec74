// Package registry stores the sweep definitions known to an application
// instance: the compiled-in study sweeps plus any loaded from definition
// files. It enforces name uniqueness at startup so that a file can never
// silently shadow a built-in, and preserves registration order so a full
// run is deterministic.
package registry

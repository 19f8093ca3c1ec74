// Package sweep holds the format-agnostic sweep model: geometry variants,
// named integer parameter ranges, and output filename templates. Its only
// operation is expanding a definition into the ordered list of external
// mesh-generator invocations the executor runs.
package sweep

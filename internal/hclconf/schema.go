package hclconf

import (
	"github.com/hashicorp/hcl/v2"
)

// paramBlock represents a `param` block within a sweep definition. The
// min/max/values attributes stay unevaluated expressions here so the
// translator can report which one was malformed.
type paramBlock struct {
	Name   string         `hcl:"name,label"`
	Min    hcl.Expression `hcl:"min,optional"`
	Max    hcl.Expression `hcl:"max,optional"`
	Values hcl.Expression `hcl:"values,optional"`
}

// sweepBlock represents a `sweep` block from a user's definition file.
type sweepBlock struct {
	Name       string        `hcl:"name,label"`
	Geometries []string      `hcl:"geometries"`
	Output     string        `hcl:"output"`
	Echo       bool          `hcl:"echo,optional"`
	Params     []*paramBlock `hcl:"param,block"`
}

// fileRoot decodes the top-level structure of a definition file.
type fileRoot struct {
	Sweeps []*sweepBlock `hcl:"sweep,block"`
	Remain hcl.Body      `hcl:",remain"`
}

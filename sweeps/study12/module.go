// Package study12 contains the compiled-in split study over the study12
// geometry.
package study12

import (
	"github.com/vk/meshsweep/internal/registry"
	"github.com/vk/meshsweep/internal/sweep"
)

// Module implements the registry.Source interface for this package.
type Module struct{}

// Register adds the study12 sweep: split 0..4 crossed with the fixed exp5
// refinement exponent. The exp5 range is a single value, kept verbatim from
// the original study template. Each output filename is echoed before its
// invocation, as the original script did.
func (m *Module) Register(r *registry.Registry) error {
	return r.Register(&sweep.Sweep{
		Name:       "study12",
		Geometries: []string{"study12"},
		Params: []sweep.Param{
			{Name: "split", Min: 0, Max: 4},
			{Name: "exp5", Min: 12, Max: 12},
		},
		Output: "study12_{exp5}_{split}.h5",
		Echo:   true,
	})
}

// Package ring contains the compiled-in ring refinement study.
package ring

import (
	"github.com/vk/meshsweep/internal/registry"
	"github.com/vk/meshsweep/internal/sweep"
)

// Module implements the registry.Source interface for this package.
type Module struct{}

// Register adds the ring sweep: the symmetric and antisymmetric ring
// geometries, each meshed at refinement exponents p 0..7. Geometries form
// the outer loop, so all ring meshes are generated before the first
// ring_antisym one.
func (m *Module) Register(r *registry.Registry) error {
	return r.Register(&sweep.Sweep{
		Name:       "ring",
		Geometries: []string{"ring", "ring_antisym"},
		Params: []sweep.Param{
			{Name: "p", Min: 0, Max: 7},
		},
		Output: "{geometry}{p}.h5",
	})
}

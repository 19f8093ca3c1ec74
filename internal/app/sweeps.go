package app

import (
	"github.com/vk/meshsweep/internal/registry"
	"github.com/vk/meshsweep/sweeps/ring"
	"github.com/vk/meshsweep/sweeps/study12"
)

// coreSweeps is the definitive list of all sweeps that are compiled into
// the meshsweep binary.
var coreSweeps = []registry.Source{
	&study12.Module{},
	&ring.Module{},
}

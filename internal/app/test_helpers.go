package app

import (
	"github.com/vk/meshsweep/internal/mesher"
)

// UseRunner overrides the execution backend for subsequent Run calls.
// Tests use this to record invocations instead of spawning the mesh tool.
func (a *App) UseRunner(r mesher.Runner) {
	a.runner = r
}

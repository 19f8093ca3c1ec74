package registry

import (
	"fmt"

	"github.com/vk/meshsweep/internal/sweep"
)

// Source is the interface compiled-in sweep packages implement to register
// their definitions.
type Source interface {
	Register(r *Registry) error
}

// Registry holds every sweep definition known to a single application
// instance, keyed by name. Registration order is preserved so that "run
// everything" is deterministic.
type Registry struct {
	sweeps map[string]*sweep.Sweep
	order  []string
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{sweeps: make(map[string]*sweep.Sweep)}
}

// Register validates a definition and adds it to the registry. Names are
// unique; a compiled-in sweep cannot be shadowed by one loaded from a file.
func (r *Registry) Register(s *sweep.Sweep) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, exists := r.sweeps[s.Name]; exists {
		return fmt.Errorf("sweep %q is already registered", s.Name)
	}
	r.sweeps[s.Name] = s
	r.order = append(r.order, s.Name)
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (*sweep.Sweep, bool) {
	s, ok := r.sweeps[name]
	return s, ok
}

// Names returns all registered sweep names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

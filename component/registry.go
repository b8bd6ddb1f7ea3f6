package component

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kpe/rasa-nlu/errors"
)

// Registration holds the descriptor and construction functions for a
// component type. Loader may be nil, in which case the Factory is used for
// both creation and loading.
type Registration struct {
	Descriptor Descriptor
	Factory    Factory
	Loader     Loader
}

// Registry is the process-wide table of component registrations. It is
// built once at startup; lookups afterwards are pure reads. No entry is
// ever removed or overwritten.
type Registry struct {
	mu            sync.RWMutex
	registrations map[string]*Registration
}

// NewRegistry creates a new empty component registry
func NewRegistry() *Registry {
	return &Registry{
		registrations: make(map[string]*Registration),
	}
}

// Register adds a component registration. A duplicate name is a
// configuration-time fatal error: pipelines reference components by name,
// so names must be unique.
func (r *Registry) Register(registration *Registration) error {
	if registration == nil {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "Register", "registration validation")
	}
	if err := registration.Descriptor.Validate(); err != nil {
		return errors.Wrap(err, "Registry", "Register", "descriptor validation")
	}
	if registration.Factory == nil {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "Register", "factory function validation")
	}

	name := registration.Descriptor.Name

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.registrations[name]; exists {
		msg := fmt.Errorf("%w: '%s'", errors.ErrDuplicateName, name)
		return errors.WrapFatal(msg, "Registry", "Register", "duplicate name check")
	}

	r.registrations[name] = registration
	return nil
}

// Lookup returns the registration for name, or false if no component with
// that name is registered.
func (r *Registry) Lookup(name string) (*Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	registration, exists := r.registrations[name]
	return registration, exists
}

// All returns every registered registration, in name order.
func (r *Registry) All() []*Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Registration, 0, len(r.registrations))
	for _, registration := range r.registrations {
		all = append(all, registration)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Descriptor.Name < all[j].Descriptor.Name
	})
	return all
}

// Names returns all registered component names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.registrations))
	for name := range r.registrations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of registered components.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.registrations)
}

// Closest returns up to n registered names closest to name by edit
// distance, nearest first. Used to enrich unknown-name errors.
func (r *Registry) Closest(name string, n int) []string {
	names := r.Names()

	type candidate struct {
		name     string
		distance int
	}
	candidates := make([]candidate, 0, len(names))
	for _, known := range names {
		candidates = append(candidates, candidate{known, editDistance(name, known)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	// Suggestions further away than half the queried name are noise.
	maxDistance := len(name)/2 + 1
	var closest []string
	for _, c := range candidates {
		if len(closest) == n {
			break
		}
		if c.distance <= maxDistance {
			closest = append(closest, c.name)
		}
	}
	return closest
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

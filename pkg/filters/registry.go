package filters

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores filters by name, providing lookup and duplication
// safeguards. Definitions resolve their chains against a registry.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]Filter
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		filters: make(map[string]Filter),
	}
}

// Register adds a filter under name. Duplicate names return an error.
func (r *Registry) Register(name string, filter Filter) error {
	if filter == nil {
		return fmt.Errorf("filters: filter is required")
	}
	if name == "" {
		return fmt.Errorf("filters: filter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.filters[name]; exists {
		return fmt.Errorf("filters: filter %q already registered", name)
	}

	r.filters[name] = filter
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, filter Filter) {
	if err := r.Register(name, filter); err != nil {
		panic(err)
	}
}

// Get retrieves a filter by name.
func (r *Registry) Get(name string) (Filter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filter, ok := r.filters[name]
	if !ok {
		return nil, fmt.Errorf("filters: filter %q not found", name)
	}
	return filter, nil
}

// Has reports whether a filter is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.filters[name]
	return ok
}

// List returns a sorted list of filter names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Chain resolves the named filters into a fixed call chain, preserving the
// declared order. Resolution happens once; the returned chain holds the
// functions themselves, not the names.
func (r *Registry) Chain(names ...string) (Chain, error) {
	if len(names) == 0 {
		return nil, nil
	}

	chain := make(Chain, 0, len(names))
	for _, name := range names {
		filter, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		chain = append(chain, filter)
	}
	return chain, nil
}

package renderprovider

import "fmt"

// Registry holds the configured render providers by name. Unlike text
// generation, renders are billable per call, so the registry never retries
// and never falls back between providers on its own: a caller that wants the
// secondary provider names it explicitly in a fresh invocation.
type Registry struct {
	providers map[string]Provider
	order     []string // priority order, first entry is the default
}

// NewRegistry creates a registry from providers sorted by priority.
func NewRegistry(providers []Provider) (*Registry, error) {
	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		if _, dup := r.providers[p.Name()]; dup {
			return nil, fmt.Errorf("duplicate render provider %q", p.Name())
		}
		r.providers[p.Name()] = p
		r.order = append(r.order, p.Name())
	}
	return r, nil
}

// Default returns the highest-priority provider.
func (r *Registry) Default() Provider {
	return r.providers[r.order[0]]
}

// Get returns the provider with the given name, or the default when name is
// empty.
func (r *Registry) Get(name string) (Provider, error) {
	if name == "" {
		return r.Default(), nil
	}
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProviderNotFound, name)
	}
	return p, nil
}

// Names returns the configured provider names in priority order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

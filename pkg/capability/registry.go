package capability

import (
	"errors"
	"fmt"
	"sync"

	"github.com/modweaver/modweaver/pkg/module"
)

var (
	// ErrFrozen indicates a mutation was attempted after Freeze.
	ErrFrozen = errors.New("capability registry is frozen")

	// ErrUnknownCapability indicates a preference referenced an unregistered capability.
	ErrUnknownCapability = errors.New("unknown capability")

	// ErrNotProvider indicates a preference referenced a module that is not a provider.
	ErrNotProvider = errors.New("module is not a provider of the capability")
)

// Registry holds all configured capabilities. It is assembled once during
// configuration, frozen before resolution starts, and read-only thereafter.
// Reads are safe for concurrent use.
type Registry struct {
	// mu protects the registry state during configuration assembly.
	mu sync.RWMutex

	// order preserves capability ids in first-registration order.
	order []string

	// capabilities maps capability id to its declaration.
	capabilities map[string]*Capability

	// frozen marks the end of configuration assembly.
	frozen bool
}

// NewRegistry creates an empty capability registry.
func NewRegistry() *Registry {
	return &Registry{
		capabilities: make(map[string]*Capability),
	}
}

// Register declares that the given modules provide the capability.
// Repeat registrations for the same id union the provider sets, preserving
// first-seen provider order. Providers appearing via multiple declarations
// are recorded once.
func (r *Registry) Register(id string, providers ...module.Identifier) error {
	if id == "" {
		return fmt.Errorf("capability id must not be empty")
	}
	if len(providers) == 0 {
		return fmt.Errorf("capability %q: at least one providing module is required", id)
	}
	for _, provider := range providers {
		if provider.IsZero() {
			return fmt.Errorf("capability %q: providing module must not be empty", id)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("register capability %q: %w", id, ErrFrozen)
	}

	cap, exists := r.capabilities[id]
	if !exists {
		cap = &Capability{ID: id}
		r.capabilities[id] = cap
		r.order = append(r.order, id)
	}

	for _, provider := range providers {
		if !cap.IsProvidedBy(provider) {
			cap.ProvidedBy = append(cap.ProvidedBy, provider)
		}
	}

	return nil
}

// Prefer records the preferred provider for a capability. The module must
// already be registered as a provider of that capability.
func (r *Registry) Prefer(id string, preferred module.Identifier, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("prefer %s for capability %q: %w", preferred, id, ErrFrozen)
	}

	cap, exists := r.capabilities[id]
	if !exists {
		return fmt.Errorf("prefer %s for capability %q: %w", preferred, id, ErrUnknownCapability)
	}

	if !cap.IsProvidedBy(preferred) {
		return fmt.Errorf("prefer %s for capability %q: %w", preferred, id, ErrNotProvider)
	}

	cap.Preferred = preferred
	cap.Reason = reason
	return nil
}

// Freeze marks the end of configuration assembly. Subsequent mutations fail
// with ErrFrozen. Freezing an already frozen registry is a no-op.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// HasCapabilities reports whether at least one capability is registered.
// Conflict resolvers use it as a fast no-op guard.
func (r *Registry) HasCapabilities() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order) > 0
}

// Len returns the number of registered capabilities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// IDs returns the capability ids in first-registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// CapabilitiesOf returns the ids of all capabilities the module provides,
// in first-registration order. The result is empty when the module provides
// no registered capability.
func (r *Registry) CapabilitiesOf(id module.Identifier) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for _, capID := range r.order {
		if r.capabilities[capID].IsProvidedBy(id) {
			ids = append(ids, capID)
		}
	}
	return ids
}

// Preferred returns the configured preferred provider for the capability.
// The second return value is false when the capability is unknown or has no
// preference.
func (r *Registry) Preferred(id string) (module.Identifier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cap, exists := r.capabilities[id]
	if !exists || !cap.HasPreferred() {
		return module.Identifier{}, false
	}
	return cap.Preferred, true
}

// Get returns a copy of the capability declaration for the given id.
func (r *Registry) Get(id string) (Capability, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cap, exists := r.capabilities[id]
	if !exists {
		return Capability{}, false
	}

	out := *cap
	out.ProvidedBy = make([]module.Identifier, len(cap.ProvidedBy))
	copy(out.ProvidedBy, cap.ProvidedBy)
	return out, true
}

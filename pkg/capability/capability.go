package capability

import (
	"github.com/modweaver/modweaver/pkg/module"
)

// Capability describes a named contract that one or more modules claim to
// fully satisfy, making those modules mutually substitutable within a
// dependency graph.
type Capability struct {
	// ID is the unique capability identifier (e.g., "logging-api").
	ID string

	// ProvidedBy lists the modules providing this capability, in the order
	// they were first declared.
	ProvidedBy []module.Identifier

	// Preferred is the module selected when providers are in conflict.
	// Zero when no preference is configured.
	Preferred module.Identifier

	// Reason is the justification recorded alongside the preference.
	Reason string
}

// HasPreferred reports whether a preferred provider is configured.
func (c Capability) HasPreferred() bool {
	return !c.Preferred.IsZero()
}

// IsProvidedBy reports whether id is a declared provider of the capability.
func (c Capability) IsProvidedBy(id module.Identifier) bool {
	for _, provider := range c.ProvidedBy {
		if provider == id {
			return true
		}
	}
	return false
}

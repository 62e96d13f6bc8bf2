package config

// CapabilitiesDocument is the top-level structure of a capability
// declaration file.
type CapabilitiesDocument struct {
	// Capabilities lists the declared capabilities in document order.
	Capabilities []CapabilityDeclaration `yaml:"capabilities" validate:"required,min=1,dive"`
}

// CapabilityDeclaration declares one capability, its providers, and the
// optional preferred provider.
type CapabilityDeclaration struct {
	// ID is the unique capability identifier (e.g., "logging-api").
	ID string `yaml:"id" validate:"required"`

	// ProvidedBy lists the providing modules as "group:name" coordinates.
	ProvidedBy []string `yaml:"providedBy" validate:"required,min=1,dive,required"`

	// Prefer names the preferred provider; it must appear in ProvidedBy.
	Prefer string `yaml:"prefer,omitempty"`

	// Because is the justification recorded alongside the preference.
	Because string `yaml:"because,omitempty"`
}

// ScenarioDocument describes conflict groups to replay offline, so that
// narrowing decisions can be reproduced outside a build.
type ScenarioDocument struct {
	// Groups lists the conflict groups in document order.
	Groups []GroupDeclaration `yaml:"groups" validate:"required,min=1,dive"`
}

// GroupDeclaration describes one conflict group.
type GroupDeclaration struct {
	// Name labels the group in reports.
	Name string `yaml:"name" validate:"required"`

	// Participants lists modules seen in earlier traversal passes whose
	// candidates are already eliminated ("group:name"). Candidate modules
	// are recorded as participants automatically.
	Participants []string `yaml:"participants,omitempty" validate:"omitempty,dive,required"`

	// Candidates lists the live candidates as "group:name@version".
	Candidates []string `yaml:"candidates" validate:"required,min=1,dive,required"`
}

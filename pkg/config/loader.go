package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/modweaver/modweaver/pkg/capability"
	"github.com/modweaver/modweaver/pkg/module"
	"github.com/modweaver/modweaver/pkg/resolve"
)

// Loader parses and validates capability declaration and scenario files.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a loader with struct validation enabled.
func NewLoader() *Loader {
	return &Loader{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// LoadCapabilities reads a capability declaration file and assembles a
// frozen registry from it.
func (l *Loader) LoadCapabilities(path string) (*capability.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read capability declarations: %w", err)
	}
	return l.ParseCapabilities(data)
}

// ParseCapabilities parses capability declarations from raw YAML and
// assembles a frozen registry.
func (l *Loader) ParseCapabilities(data []byte) (*capability.Registry, error) {
	var doc CapabilitiesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse capability declarations: %w", err)
	}

	if err := l.validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid capability declarations: %w", err)
	}

	registry := capability.NewRegistry()
	for _, decl := range doc.Capabilities {
		providers := make([]module.Identifier, 0, len(decl.ProvidedBy))
		for _, coordinate := range decl.ProvidedBy {
			id, err := module.Parse(coordinate)
			if err != nil {
				return nil, fmt.Errorf("capability %q: %w", decl.ID, err)
			}
			providers = append(providers, id)
		}

		if err := registry.Register(decl.ID, providers...); err != nil {
			return nil, err
		}

		if decl.Prefer != "" {
			preferred, err := module.Parse(decl.Prefer)
			if err != nil {
				return nil, fmt.Errorf("capability %q: %w", decl.ID, err)
			}
			if err := registry.Prefer(decl.ID, preferred, decl.Because); err != nil {
				return nil, err
			}
		}
	}

	registry.Freeze()
	return registry, nil
}

// LoadScenario reads a scenario file describing conflict groups.
func (l *Loader) LoadScenario(path string) (*ScenarioDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return l.ParseScenario(data)
}

// ParseScenario parses a scenario document from raw YAML.
func (l *Loader) ParseScenario(data []byte) (*ScenarioDocument, error) {
	var doc ScenarioDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	if err := l.validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &doc, nil
}

// BuildGroup materializes a conflict group from its declaration. Explicit
// participants are recorded first, then candidates in document order.
func (g GroupDeclaration) BuildGroup() (*resolve.ConflictGroup, error) {
	group := resolve.NewConflictGroup()

	for _, coordinate := range g.Participants {
		id, err := module.Parse(coordinate)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		group.AddParticipant(id)
	}

	for _, coordinate := range g.Candidates {
		c, err := resolve.ParseVersionCandidate(coordinate)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		group.AddCandidate(c)
	}

	return group, nil
}

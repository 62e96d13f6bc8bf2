package resolve

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/modweaver/modweaver/pkg/module"
)

// VersionCandidate is a minimal Candidate carrying a module identifier and
// a semantic version. The traversal engine's richer resolution states
// satisfy Candidate directly; VersionCandidate backs the scenario runner
// and tests.
//
// The version is parsed and validated as semver but never consulted by
// capability narrowing, which operates on module identity only.
type VersionCandidate struct {
	id      module.Identifier
	version *semver.Version
}

// NewVersionCandidate creates a candidate for the module at the given
// semantic version.
func NewVersionCandidate(id module.Identifier, version string) (*VersionCandidate, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("candidate %s: invalid version %q: %w", id, version, err)
	}
	return &VersionCandidate{id: id, version: v}, nil
}

// ParseVersionCandidate parses a "group:name@version" coordinate.
func ParseVersionCandidate(coordinate string) (*VersionCandidate, error) {
	at := strings.LastIndex(coordinate, "@")
	if at < 0 || at == len(coordinate)-1 {
		return nil, fmt.Errorf("invalid candidate coordinate %q: expected \"group:name@version\"", coordinate)
	}
	id, err := module.Parse(coordinate[:at])
	if err != nil {
		return nil, fmt.Errorf("invalid candidate coordinate %q: %w", coordinate, err)
	}
	return NewVersionCandidate(id, coordinate[at+1:])
}

// Module returns the owning module identifier.
func (c *VersionCandidate) Module() module.Identifier {
	return c.id
}

// Version returns the candidate's semantic version.
func (c *VersionCandidate) Version() *semver.Version {
	return c.version
}

// String renders the candidate as "group:name@version".
func (c *VersionCandidate) String() string {
	return c.id.String() + "@" + c.version.Original()
}

package module

import (
	"fmt"
	"sort"
	"strings"
)

// Identifier identifies a module by its (group, name) coordinate,
// irrespective of version. Identifiers are value objects: two identifiers
// are equal when both coordinates are equal.
type Identifier struct {
	// Group is the organizational namespace (e.g., "org.apache.logging").
	Group string

	// Name is the module name within the group (e.g., "log4j-core").
	Name string
}

// NewIdentifier creates an identifier from its two coordinates.
func NewIdentifier(group, name string) Identifier {
	return Identifier{Group: group, Name: name}
}

// Parse parses a "group:name" coordinate string into an identifier.
func Parse(coordinate string) (Identifier, error) {
	parts := strings.Split(coordinate, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Identifier{}, fmt.Errorf("invalid module coordinate %q: expected \"group:name\"", coordinate)
	}
	return Identifier{Group: parts[0], Name: parts[1]}, nil
}

// String renders the identifier as "group:name".
func (id Identifier) String() string {
	return id.Group + ":" + id.Name
}

// IsZero reports whether the identifier has no coordinates set.
func (id Identifier) IsZero() bool {
	return id.Group == "" && id.Name == ""
}

// Compare orders identifiers by group, then by name. It returns a negative
// value when a sorts before b, zero when they are equal, and a positive
// value otherwise.
func Compare(a, b Identifier) int {
	if c := strings.Compare(a.Group, b.Group); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// Less reports whether id sorts before other.
func (id Identifier) Less(other Identifier) bool {
	return Compare(id, other) < 0
}

// Sort sorts identifiers in place by group, then name.
func Sort(ids []Identifier) {
	sort.Slice(ids, func(i, j int) bool {
		return Compare(ids[i], ids[j]) < 0
	})
}

// Join renders identifiers separated by sep, preserving slice order.
func Join(ids []Identifier, sep string) string {
	rendered := make([]string, len(ids))
	for i, id := range ids {
		rendered[i] = id.String()
	}
	return strings.Join(rendered, sep)
}

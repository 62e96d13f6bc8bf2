package resolve

import (
	"github.com/google/uuid"

	"github.com/modweaver/modweaver/pkg/module"
)

// Candidate is the resolution state of one candidate component competing to
// satisfy a dependency requirement. The traversal engine owns the concrete
// type; conflict resolvers only consult the owning module.
type Candidate interface {
	Module() module.Identifier
}

// ConflictGroup tracks the state of one conflict group across traversal
// passes: the append-only participant history and the live candidate list.
//
// Participants accumulate every module ever seen in the group, including
// modules whose candidates were eliminated in an earlier pass. That history
// is what lets resolvers detect conflicts that only became effective after
// later edges were discovered. Candidates only shrink within a resolver
// invocation; new candidates are appended by the traversal engine between
// invocations.
//
// A ConflictGroup is not safe for concurrent use. The traversal engine
// drives one group at a time; independent groups may be resolved in
// parallel.
type ConflictGroup struct {
	// id correlates log events and trace spans for this group.
	id uuid.UUID

	// participants is the append-only ordered set of modules ever seen.
	participants []module.Identifier

	// participantSet indexes participants for O(1) membership checks.
	participantSet map[module.Identifier]struct{}

	// candidates is the live, ordered candidate list.
	candidates []Candidate
}

// NewConflictGroup creates an empty conflict group.
func NewConflictGroup() *ConflictGroup {
	return &ConflictGroup{
		id:             uuid.New(),
		participantSet: make(map[module.Identifier]struct{}),
	}
}

// ID returns the correlation identifier of the group.
func (g *ConflictGroup) ID() uuid.UUID {
	return g.id
}

// AddCandidate appends a candidate and records its module as a participant.
func (g *ConflictGroup) AddCandidate(c Candidate) {
	g.candidates = append(g.candidates, c)
	g.AddParticipant(c.Module())
}

// AddParticipant records a module in the participant history. Adding a
// module already present is a no-op; insertion order is preserved.
func (g *ConflictGroup) AddParticipant(id module.Identifier) {
	if _, seen := g.participantSet[id]; seen {
		return
	}
	g.participantSet[id] = struct{}{}
	g.participants = append(g.participants, id)
}

// Participants returns the participant history in insertion order.
func (g *ConflictGroup) Participants() []module.Identifier {
	out := make([]module.Identifier, len(g.participants))
	copy(out, g.participants)
	return out
}

// Candidates returns the live candidates in order.
func (g *ConflictGroup) Candidates() []Candidate {
	out := make([]Candidate, len(g.candidates))
	copy(out, g.candidates)
	return out
}

// Len returns the number of live candidates.
func (g *ConflictGroup) Len() int {
	return len(g.candidates)
}

// HasParticipant reports whether the module appears in the history.
func (g *ConflictGroup) HasParticipant(id module.Identifier) bool {
	_, seen := g.participantSet[id]
	return seen
}

// retain removes every candidate whose module differs from selected,
// preserving the order of the survivors. It returns the number of
// candidates removed. Multiple candidates of the selected module (e.g.,
// different versions) all survive.
func (g *ConflictGroup) retain(selected module.Identifier) int {
	kept := g.candidates[:0]
	for _, c := range g.candidates {
		if c.Module() == selected {
			kept = append(kept, c)
		}
	}
	removed := len(g.candidates) - len(kept)
	for i := len(kept); i < len(g.candidates); i++ {
		g.candidates[i] = nil
	}
	g.candidates = kept
	return removed
}

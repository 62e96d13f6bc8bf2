package resolve

import (
	"time"

	"github.com/modweaver/modweaver/pkg/capability"
	"github.com/modweaver/modweaver/pkg/module"
	"github.com/modweaver/modweaver/pkg/telemetry"
)

// CapabilityConflictResolver narrows a conflict group's candidates based on
// the capabilities the candidate modules provide. When several candidates
// provide the same capability and the registry names a preferred provider,
// every candidate of a different module is removed.
//
// The resolver never selects a version: narrowing is by module identity
// only, so version conflicts among the surviving candidates remain for a
// later resolver in the chain. Re-invoking it on an unchanged group is a
// no-op, and all decisions depend only on capability registration order and
// candidate order.
type CapabilityConflictResolver struct {
	registry *capability.Registry
	logger   *telemetry.Logger
	metrics  *telemetry.Metrics
}

// NewCapabilityConflictResolver creates a resolver backed by the given
// registry. Logger and metrics may be nil.
func NewCapabilityConflictResolver(registry *capability.Registry, logger *telemetry.Logger, metrics *telemetry.Metrics) *CapabilityConflictResolver {
	if logger == nil {
		logger = telemetry.NopLogger()
	}
	return &CapabilityConflictResolver{
		registry: registry,
		logger:   logger.NewComponentLogger("capability-resolver"),
		metrics:  metrics,
	}
}

// Name identifies the resolver in logs and metrics.
func (r *CapabilityConflictResolver) Name() string {
	return "capability"
}

// Select narrows the group's candidates in place. It returns a
// *ContradictionError when two capabilities in effective conflict disagree
// on the preferred module; narrowing performed for earlier capabilities in
// the same call is preserved.
func (r *CapabilityConflictResolver) Select(group *ConflictGroup) error {
	start := time.Now()
	defer func() {
		r.metrics.ObserveSelect(r.Name(), time.Since(start))
	}()

	if !r.registry.HasCapabilities() {
		return nil
	}

	order, providers := r.capabilityProviders(group)
	if len(order) == 0 {
		return nil
	}

	var selected module.Identifier
	var selectedCapability string
	haveSelection := false

	for _, capID := range order {
		if !hasEffectiveConflict(group.participants, providers[capID]) {
			// fewer than two historical participants provide this
			// capability, so there is no ambiguity to resolve yet
			continue
		}
		r.metrics.IncEffectiveConflict()

		preferred, ok := r.registry.Preferred(capID)
		if !ok {
			// a module discovered later in the graph may still bring a
			// preference, so the conflict stays open instead of failing here
			r.metrics.IncDeferredConflict()
			r.logger.Z().Debug().
				Stringer("group", group.ID()).
				Str("capability", capID).
				Msg("Effective conflict without preference, deferring")
			continue
		}

		if haveSelection && selected != preferred {
			r.metrics.IncContradiction()
			return &ContradictionError{
				FirstCapability:  selectedCapability,
				FirstPreferred:   selected,
				SecondCapability: capID,
				SecondPreferred:  preferred,
				Participants:     group.Participants(),
			}
		}

		selected = preferred
		selectedCapability = capID
		haveSelection = true
	}

	if haveSelection {
		removed := group.retain(selected)
		r.metrics.AddEliminatedCandidates(removed)
		r.logger.Z().Debug().
			Stringer("group", group.ID()).
			Str("capability", selectedCapability).
			Stringer("selected", selected).
			Int("eliminated", removed).
			Msg("Narrowed candidates to preferred capability provider")
	}

	return nil
}

// capabilityProviders builds the capability -> providing modules multimap
// from the live candidates. Both the capability ids and the modules within
// each capability preserve first-seen order; a module reached through
// multiple dependency edges counts once. The multimap is rebuilt on every
// call so that it always reflects the current candidate list.
func (r *CapabilityConflictResolver) capabilityProviders(group *ConflictGroup) ([]string, map[string][]module.Identifier) {
	var order []string
	providers := make(map[string][]module.Identifier)
	seen := make(map[module.Identifier]struct{})

	for _, c := range group.candidates {
		m := c.Module()
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}

		for _, capID := range r.registry.CapabilitiesOf(m) {
			if _, known := providers[capID]; !known {
				order = append(order, capID)
			}
			providers[capID] = append(providers[capID], m)
		}
	}

	return order, providers
}

// hasEffectiveConflict reports whether at least two participants of the
// group provide the capability. The full participant history is consulted,
// not just the live candidates: a module eliminated in an earlier pass
// still created the ambiguity the registry has to resolve.
func hasEffectiveConflict(participants, providing []module.Identifier) bool {
	count := 0
	for _, participant := range participants {
		for _, provider := range providing {
			if participant == provider {
				count++
				break
			}
		}
		if count == 2 {
			return true
		}
	}
	return false
}

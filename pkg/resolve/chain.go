package resolve

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/modweaver/modweaver/pkg/telemetry"
)

// Resolver narrows the candidate set of a conflict group. Implementations
// must only remove candidates, never add them, and must be safe to invoke
// repeatedly on the same group as the graph walk discovers new edges.
type Resolver interface {
	// Name identifies the resolver in logs and metrics.
	Name() string

	// Select narrows the group's candidates in place.
	Select(group *ConflictGroup) error
}

// Chain runs conflict resolvers in a fixed order for one invocation round.
// Each resolver sees the narrowing done by its predecessors in the same
// round, and the round halts early once a single candidate remains. The
// traversal engine owns composition: it decides which resolvers take part
// and invokes the chain each time a conflict group gains new information.
type Chain struct {
	resolvers []Resolver
	logger    *telemetry.Logger
	metrics   *telemetry.Metrics
}

// NewChain creates a resolver chain running the given resolvers in order.
// Logger and metrics may be nil.
func NewChain(logger *telemetry.Logger, metrics *telemetry.Metrics, resolvers ...Resolver) *Chain {
	if logger == nil {
		logger = telemetry.NopLogger()
	}
	return &Chain{
		resolvers: resolvers,
		logger:    logger.NewComponentLogger("resolver-chain"),
		metrics:   metrics,
	}
}

// Resolve runs one round of the chain against the group. It stops as soon
// as one candidate remains or a resolver fails; the error of a failing
// resolver is returned with the narrowing done so far left in place.
func (c *Chain) Resolve(ctx context.Context, group *ConflictGroup) error {
	_, span := telemetry.StartSpan(ctx, "resolve.chain_round",
		trace.WithAttributes(
			attribute.String("conflict_group.id", group.ID().String()),
			attribute.Int("conflict_group.candidates", group.Len()),
			attribute.Int("conflict_group.participants", len(group.participants)),
		),
	)
	defer span.End()

	c.metrics.IncChainRound()

	for _, resolver := range c.resolvers {
		if group.Len() <= 1 {
			break
		}
		if err := resolver.Select(group); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "conflict resolution failed")
			c.logger.Z().Error().
				Err(err).
				Stringer("group", group.ID()).
				Str("resolver", resolver.Name()).
				Msg("Conflict resolver failed")
			return fmt.Errorf("resolver %s: %w", resolver.Name(), err)
		}
	}

	span.SetAttributes(attribute.Int("conflict_group.remaining", group.Len()))
	return nil
}

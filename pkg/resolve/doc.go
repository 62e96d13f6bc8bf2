// Package resolve implements capability-based conflict resolution for
// dependency graphs.
//
// # Conflict groups
//
// A conflict group is the set of candidate components competing to satisfy
// one dependency requirement. Because the graph is discovered incrementally,
// a group is revisited every time a new edge adds information. The group
// keeps two collections with different lifetimes:
//
//   - Participants: the append-only history of every module ever seen in
//     the group, surviving candidate elimination across passes.
//   - Candidates: the live, shrinking list the resolvers narrow.
//
// # Capability narrowing
//
// CapabilityConflictResolver consults the capability registry: when at
// least two historical participants provide the same capability, the
// conflict is effective, and the registry's preferred provider (if any)
// decides which candidates survive. Capabilities without a preference are
// deferred rather than failed, since a module added later in the graph may
// still resolve them. Two capabilities that disagree on their preferred
// module within one group are a configuration contradiction and abort
// resolution.
//
// Narrowing is by module identity only. Candidates of the selected module
// at different versions all survive; choosing among versions is the job of
// a later resolver in the chain.
//
// # Resolver chain
//
// Chain composes resolvers into an ordered round sharing one group. The
// round halts once a single candidate remains. Ambiguity left after a full
// round belongs to the traversal engine, which either retries on new graph
// information or fails the build at end-of-graph validation.
package resolve

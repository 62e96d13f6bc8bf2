// Package capability defines the capability model and registry used by the
// modweaver conflict-resolution subsystem.
//
// A capability is a named contract that one or more modules claim to fully
// satisfy. When a dependency graph contains several candidates providing the
// same capability, the configured preferred provider decides which of them
// survive narrowing.
//
// The Registry has two distinct phases:
//
//  1. Configuration assembly: Register and Prefer populate declarations.
//  2. Resolution: Freeze marks the registry read-only; HasCapabilities,
//     CapabilitiesOf and Preferred answer resolver queries. Reads are safe
//     for concurrent use, so independent conflict groups may be resolved in
//     parallel against one registry.
//
// Ordering is part of the contract: capability ids are reported in
// first-registration order and providers in first-declaration order, which
// is what makes conflict resolution deterministic across runs.
package capability

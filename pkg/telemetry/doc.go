// Package telemetry provides logging, metrics, and tracing for modweaver.
//
// Logging is built on zerolog with component child loggers and context
// propagation. Metrics are Prometheus collectors scoped to conflict
// resolution; a nil *Metrics records nothing, so library components accept
// optional telemetry without guard clutter at call sites. Tracing uses only
// the OpenTelemetry API: the embedding process decides whether spans are
// exported by installing a tracer provider.
package telemetry

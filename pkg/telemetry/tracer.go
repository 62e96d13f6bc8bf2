package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies spans emitted by the modweaver library.
const tracerName = "github.com/modweaver/modweaver"

// Tracer returns the OpenTelemetry tracer for modweaver spans. The library
// only uses the tracing API; spans are no-ops unless the embedding process
// installs a tracer provider.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartSpan starts a span on the modweaver tracer.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, opts...)
}

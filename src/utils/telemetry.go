package utils

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TraceIDFromContext returns the id of the active span, or an empty string when there is none.
func TraceIDFromContext(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}

	return sc.TraceID().String()
}

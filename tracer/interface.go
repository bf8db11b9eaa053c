package tracer

import (
	"context"
)

// Tracer provides distributed tracing capabilities for applications.
// It wraps OpenTelemetry functionality with a simplified interface for
// creating spans, recording errors, and propagating trace context. Spans
// started through this interface also feed the goroutine-local span-trace
// registry consumed by package ctxerr.
//
// This interface is implemented by the concrete *TracerClient type.
type Tracer interface {
	// StartSpan creates a new span with the given name.
	// The span is automatically attached to the parent span in the context
	// (if any) and registered as the innermost logical span for span-trace
	// capture. Returns a new context with the span and the span itself.
	// Always call span.End() when the operation completes (typically via
	// defer), on the same goroutine that started it.
	StartSpan(ctx context.Context, name string) (context.Context, Span)

	// GetCarrier extracts trace context from the given context as a map of
	// W3C Trace Context headers. Use this when making outbound requests to
	// other services to propagate the trace.
	GetCarrier(ctx context.Context) map[string]string

	// SetCarrierOnContext injects trace context from headers into the given
	// context. Use this when receiving requests from other services to
	// continue the trace.
	SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context
}

// Span represents a trace span for tracking a single operation.
//
// A span is created with StartSpan and must be ended when the operation
// completes. End also unregisters the span from the span-trace registry,
// so it must run on the goroutine that started the span.
type Span interface {
	// End completes the span, removes it from the span-trace registry, and
	// submits it to configured exporters. Calling End more than once is
	// safe; only the first call touches the registry.
	//
	// Example:
	//   ctx, span := tracer.StartSpan(ctx, "operation-name")
	//   defer span.End()
	End()

	// SetAttributes adds key-value pairs of attributes to the span.
	// Strings, ints, int64s, float64s and bools are stored natively;
	// anything else is converted with fmt.Sprint.
	SetAttributes(attrs map[string]interface{})

	// RecordError marks the span as failed and records the error details
	// on it. Call it just before returning the error to the caller:
	//
	//   if err != nil {
	//       span.RecordError(err)
	//       return nil, ctxerr.Fail(err)
	//   }
	RecordError(err error)
}

package tracer

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/ctxerr/spantrace"
)

// spanImpl is an internal implementation of the Span interface that wraps an
// OpenTelemetry span and keeps the span-trace registry in sync with it.
type spanImpl struct {
	span traceSpan.Span

	// unregister pops this span's frame from the span-trace registry at
	// most once, even if End is called repeatedly.
	unregister sync.Once
}

// End implements the Span interface. It removes the span's frame from the
// goroutine-local span-trace registry and ends the underlying OpenTelemetry
// span, submitting it to configured exporters. End must run on the goroutine
// that called StartSpan; otherwise the registry of another goroutine would be
// popped.
func (s *spanImpl) End() {
	s.unregister.Do(spantrace.Pop)
	s.span.End()
}

// SetAttributes implements the Span interface by adding attributes to the
// span. Supported value types (string, int, int64, float64, bool) are stored
// natively; anything else is converted to a string with fmt.Sprint. An empty
// map is a no-op.
func (s *spanImpl) SetAttributes(attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			// For unsupported types, convert to string
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	s.span.SetAttributes(attributes...)
}

// RecordError implements the Span interface by recording the error event on
// the span and setting the span status to Error with the error message as
// description. Contextual errors from package ctxerr render their span trace
// and backtrace into the recorded message, so failed spans carry the full
// capture.
func (s *spanImpl) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// StartSpan creates a new span with the given name and returns an updated
// context containing it, along with a Span interface. The created span
// becomes a child of any span already in the context and is pushed onto the
// calling goroutine's span-trace registry, so that errors raised while it is
// active capture it as part of their logical context.
//
// Always end the returned span, on the same goroutine, when the operation
// completes:
//
//	func processRequest(ctx context.Context, req Request) (Response, error) {
//	    ctx, span := tracer.StartSpan(ctx, "process-request")
//	    defer span.End()
//
//	    result, err := performWork(ctx, req)
//	    if err != nil {
//	        span.RecordError(err)
//	        return Response{}, ctxerr.Fail(err)
//	    }
//	    return result, nil
//	}
func (t *TracerClient) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	tracer := t.tracer.Tracer("")
	ctx, otSpan := tracer.Start(ctx, name)

	spantrace.Push(name, otSpan.SpanContext())

	return ctx, &spanImpl{span: otSpan}
}

// GetCarrier extracts the current trace context from ctx as a map of W3C
// Trace Context headers ("traceparent", and "tracestate" when present).
// Add the returned headers to outbound requests or messages so the receiving
// service can continue the trace.
func (t *TracerClient) GetCarrier(ctx context.Context) map[string]string {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	carrier := propagation.MapCarrier{}
	propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext is the complement to GetCarrier: it extracts trace
// information from a carrier map (for example, headers of an incoming
// request) and injects it into ctx, so spans created from the returned
// context continue the originating trace instead of starting a new one.
func (t *TracerClient) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	return propagator.Extract(ctx, propagation.MapCarrier(carrier))
}

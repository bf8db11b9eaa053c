// Package tracer provides distributed tracing functionality using
// OpenTelemetry and maintains the span-trace registry consumed by package
// ctxerr.
//
// The package offers a simplified interface for implementing distributed
// tracing in Go applications. It abstracts away the complexity of
// OpenTelemetry setup (provider construction, OTLP exporter wiring, resource
// attributes, propagators) behind a single Config, and every span started
// through it is also recorded as a logical span in the goroutine-local
// registry of package spantrace, so contextual errors raised while the span
// is active capture it automatically.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - Tracer interface: defines the contract for tracing operations
//   - TracerClient struct: concrete implementation of the Tracer interface
//   - Span interface: defines the contract for span operations
//   - Constructor returns *TracerClient (concrete type)
//   - FX module provides both *TracerClient and Tracer interface
//
// # Basic Usage
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "my-service",
//	    AppEnv:       "development",
//	    EnableExport: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx, span := tracerClient.StartSpan(ctx, "load-user")
//	defer span.End()
//
//	if err := loadUser(ctx); err != nil {
//	    span.RecordError(err)
//	    return ctxerr.Fail(err) // captures "load-user" in its span trace
//	}
//
// # Exporting
//
// With EnableExport set, spans are sent to an OTLP HTTP collector at
// Config.Endpoint (DefaultEndpoint when empty) using batch processing, or
// simple synchronous processing when UseSimpleProcessor is set. Without it,
// spans stay in-process but span-trace capture and context propagation keep
// working, which is what tests and local development usually want.
//
// # Distributed Tracing Across Services
//
// GetCarrier and SetCarrierOnContext exchange W3C Trace Context headers with
// other services so a trace continues across process boundaries:
//
//	// Sending side
//	for key, value := range tracerClient.GetCarrier(ctx) {
//	    req.Header.Set(key, value)
//	}
//
//	// Receiving side
//	ctx := tracerClient.SetCarrierOnContext(r.Context(), headers)
//	ctx, span := tracerClient.StartSpan(ctx, "handle-request")
//	defer span.End()
//
// # Thread Safety
//
// All methods on TracerClient are safe for concurrent use. Individual spans
// must be ended on the goroutine that started them, because the span-trace
// registry is goroutine-local.
package tracer

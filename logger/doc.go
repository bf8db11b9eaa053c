// Package logger provides structured logging with contextual-error and
// distributed-tracing awareness.
//
// The package wraps Uber's Zap with a simplified API: log levels, structured
// fields, JSON output to stderr, and fx integration. On top of the usual
// wrapper it understands the contextual errors of package ctxerr — when a
// logged error carries a captured span trace or backtrace, both are promoted
// to dedicated structured fields ("span_trace", "backtrace") instead of being
// buried inside the error message.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: defines the contract for logging operations
//   - LoggerClient struct: concrete implementation of the Logger interface
//   - NewLoggerClient constructor: returns *LoggerClient (concrete type)
//   - FXModule: provides both *LoggerClient and Logger for dependency injection
//
// # Direct Usage
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "my-service",
//	})
//
//	if err := store.Save(user); err != nil {
//	    // span_trace and backtrace become structured fields
//	    log.Error("saving user failed", ctxerr.Fail(err), map[string]interface{}{
//	        "user_id": user.ID,
//	    })
//	}
//
// # Trace Correlation
//
// With EnableTracing set, the *WithContext methods extract the active span
// from the context and add "trace_id" and "span_id" fields, so log entries
// line up with the distributed trace the tracer package exports:
//
//	ctx, span := tracerClient.StartSpan(ctx, "handle-request")
//	defer span.End()
//
//	log.InfoWithContext(ctx, "request accepted", nil)
//
// # FX Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info, ServiceName: "my-service"}
//	    }),
//	)
package logger

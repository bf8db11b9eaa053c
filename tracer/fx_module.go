package tracer

import (
	"context"
	"log"

	"go.uber.org/fx"
)

// FXModule provides an Uber FX module that configures distributed tracing
// for your application. It registers the tracer client with the dependency
// injection system and sets up lifecycle management so pending spans are
// flushed on shutdown.
//
// The module provides:
// 1. *TracerClient (concrete type) for direct use
// 2. Tracer interface for dependency injection
// 3. Shutdown hooks to cleanly close tracer resources
//
// Usage:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config {
//	        return tracer.Config{ServiceName: "my-service", EnableExport: true}
//	    }),
//	)
//	app.Run()
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient, // Provides *TracerClient
		// Also provide the Tracer interface
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers a shutdown hook for the tracer with the
// FX lifecycle. On stop the tracer provider is shut down gracefully, flushing
// any batched spans to the exporter. The function is invoked automatically by
// FXModule and normally does not need to be called directly.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *TracerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: shutting down tracer...")
			if tracer.tracer == nil {
				log.Println("INFO: tracer is nil, skipping shutdown")
				return nil
			}
			return tracer.tracer.Shutdown(ctx)
		},
	})
}

package tracer

// Defaults applied by NewClient when the corresponding Config field is empty.
const (
	// DefaultServiceName identifies a service that did not configure one.
	DefaultServiceName = "default-service"

	// DefaultEndpoint is the OTLP HTTP endpoint of a locally running collector.
	DefaultEndpoint = "http://localhost:4318"
)

// Config defines the configuration for the OpenTelemetry tracer.
// It controls service identification, exporter wiring, and span processing.
type Config struct {
	// ServiceName specifies the name of the service using this tracer.
	// It appears as the "service.name" resource attribute on all exported
	// spans. When empty, DefaultServiceName is used.
	//
	// Example values: "user-service", "payment-processor"
	ServiceName string

	// AppEnv indicates the deployment environment where the service is
	// running, e.g. "development", "staging", "production". It is set as
	// the "deployment.environment" and "environment" resource attributes
	// on all spans.
	AppEnv string

	// Endpoint is the base URL of the OTLP HTTP collector spans are
	// exported to. When empty, DefaultEndpoint is used. Only relevant
	// when EnableExport is true.
	Endpoint string

	// EnableExport controls whether spans are exported to a collector.
	// When false, tracing still works for span-trace capture and trace
	// context propagation; spans just never leave the process.
	// Development environments typically leave this off.
	EnableExport bool

	// UseSimpleProcessor switches from batched to simple (synchronous,
	// per-span) export. Batch processing is the default and the right
	// choice for production; simple processing is mainly useful in tests
	// and short-lived tools where flush latency matters more than
	// throughput.
	UseSimpleProcessor bool
}

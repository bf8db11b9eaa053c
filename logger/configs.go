package logger

// Log level constants that define the available logging levels.
// These string constants are used in configuration to set the desired log level.
const (
	// Debug represents the most verbose logging level, intended for development and troubleshooting.
	Debug = "debug"

	// Info represents the standard logging level for general operational information.
	Info = "info"

	// Warning represents the logging level for potential issues that aren't errors.
	Warning = "warning"

	// Error represents the logging level for error conditions.
	Error = "error"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Valid values are "debug", "info", "warning" and "error";
	// anything else falls back to "info".
	Level string

	// EnableTracing controls whether tracing integration is enabled for the
	// *WithContext logging methods. When set, log entries automatically
	// carry "trace_id" and "span_id" fields extracted from the context's
	// active span, correlating logs with distributed traces.
	EnableTracing bool

	// ServiceName is the name of the service writing log entries.
	// It populates the "service" field on every entry.
	ServiceName string

	// CallerSkip controls the number of stack frames to skip when
	// reporting the caller. Use the default (1) when calling the logger
	// directly, 2 when one wrapper layer sits between your code and this
	// package, and so on.
	CallerSkip int
}

// Package ctxerr decorates errors with the logical span hierarchy and,
// optionally, the physical call stack active at the point the error was
// created.
//
// When an error is finally printed or logged it shows the message, the
// logical context, and (if captured) the backtrace, giving both "why, in
// terms of program logic" and "where, in terms of call stack" without the
// caller threading context manually.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - Error[T] struct: the generic wrapper, a pure decorator around an
//     inner error
//   - ContextCapturer / BacktraceCapturer interfaces: the two capture
//     facilities, each a zero-argument, infallible snapshot operation
//   - Package defaults back the capturers with spantrace.Capture and
//     backtrace.Capture; tests may swap them
//
// The wrapper is designed to be the outermost layer at the point an error is
// raised, then propagated upward unchanged, so that context and backtrace
// reflect the original raise site rather than being re-captured along the
// way.
//
// # Basic Usage
//
//	func loadConfig(path string) (*Config, error) {
//		raw, err := os.ReadFile(path)
//		if err != nil {
//			// Decorate and return in a single expression.
//			return nil, ctxerr.Fail(err)
//		}
//		// ...
//	}
//
// Manual construction gives the same result in two steps; attaching a
// backtrace is optional and is the expensive part, so hot paths can skip it:
//
//	e := ctxerr.New(err)                          // span trace only
//	e = e.WithBacktrace(backtrace.Capture())      // add the call stack
//
// # Rendering
//
// The Error method renders one line per captured facet, in a fixed order:
//
//	Error: open config.yaml: no such file or directory
//	Context: handle-request -> load-config (trace_id=..., span_id=...)
//	Backtrace: [main.loadConfig config.go:17, main.main main.go:9]
//
// Without a backtrace the output is two lines; no placeholder is emitted.
//
// # Chain Walking
//
// The wrapper exposes the inner error through Unwrap, so errors.Is and
// errors.As see through it:
//
//	err := ctxerr.Fail(fs.ErrNotExist)
//	errors.Is(err, fs.ErrNotExist) // true
//
// SpanTraceFrom and BacktraceFrom retrieve captured diagnostics from anywhere
// in a wrapped chain; package logger uses them to emit span traces and
// backtraces as structured log fields.
//
// # Concurrency
//
// Capture happens synchronously on the goroutine raising the error. Wrapper
// values are transferred by ownership; they are not safe for concurrent
// mutation and do not need to be under normal use.
package ctxerr

package ctxerr

import (
	"strings"

	"github.com/aalemi-dev/ctxerr/backtrace"
	"github.com/aalemi-dev/ctxerr/spantrace"
)

// Error decorates an inner error of type T with the logical span hierarchy
// captured when the wrapper was created and, optionally, a backtrace attached
// afterwards. It is a pure decorator: the inner error is never inspected or
// transformed.
//
// The span trace is always present; the backtrace is absent until attached
// with WithBacktrace, normally immediately after construction.
type Error[T error] struct {
	inner     T
	context   spantrace.Trace
	backtrace *backtrace.Trace
}

// New wraps inner and unconditionally captures the current logical context.
// The backtrace starts absent. New cannot fail.
//
// inner must be non-nil: the wrapper decorates an error that already exists,
// and rendering a wrapper around a nil error panics.
func New[T error](inner T) *Error[T] {
	return &Error[T]{
		inner:   inner,
		context: captureContext(),
	}
}

// WithBacktrace attaches an already-captured backtrace and returns the same
// wrapper for chaining. Attaching a second time overwrites the previous
// snapshot; a wrapper never renders more than one backtrace section.
func (e *Error[T]) WithBacktrace(bt backtrace.Trace) *Error[T] {
	e.backtrace = &bt
	return e
}

// Error renders the inner error's message, the captured context, and, if and
// only if one was attached, the backtrace:
//
//	Error: open config.yaml: no such file or directory
//	Context: handle-request -> load-config
//	Backtrace: [main.loadConfig config.go:17]
//
// A missing backtrace shortens the output; it never adds a placeholder line.
func (e *Error[T]) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.inner.Error())
	b.WriteString("\nContext: ")
	b.WriteString(e.context.String())

	if e.backtrace != nil {
		b.WriteString("\nBacktrace: ")
		b.WriteString(e.backtrace.String())
	}

	return b.String()
}

// Unwrap exposes the inner error as the wrapper's cause so that generic
// chain-walking tooling (errors.Is, errors.As) sees through the wrapper.
func (e *Error[T]) Unwrap() error {
	return e.inner
}

// SpanTrace returns the logical context captured when the wrapper was
// created.
func (e *Error[T]) SpanTrace() spantrace.Trace {
	return e.context
}

// Backtrace returns the attached backtrace and whether one is present.
func (e *Error[T]) Backtrace() (backtrace.Trace, bool) {
	if e.backtrace == nil {
		return backtrace.Trace{}, false
	}
	return *e.backtrace, true
}

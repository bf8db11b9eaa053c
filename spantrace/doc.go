// Package spantrace captures snapshots of the logical span hierarchy active
// on the calling goroutine.
//
// Unlike package backtrace, which records the physical call stack, spantrace
// records named logical operations ("spans") that are currently in progress.
// The two answer different questions about an error: "where, in terms of call
// stack" versus "why, in terms of program logic".
//
// The hierarchy is maintained as a goroutine-local registry. The tracing
// collaborator (package tracer) calls Push when a span starts and Pop when it
// ends; application code normally never touches the registry directly and only
// calls Capture, typically indirectly through package ctxerr.
//
// # Capture semantics
//
// Capture is a zero-argument, synchronous, infallible snapshot of the calling
// goroutine's active spans. The returned Trace is a defensive copy: spans
// ending after the capture do not mutate it. A goroutine with no active spans
// yields an empty Trace, which is valid and renders as the empty string.
//
// # Registry discipline
//
// Push and Pop must pair on the same goroutine, normally via defer:
//
//	spantrace.Push("load-user", span.SpanContext())
//	defer spantrace.Pop()
//
// Spans started on one goroutine are not visible to captures on another;
// goroutines do not inherit their parent's span stack.
package spantrace

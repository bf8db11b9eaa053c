// Package backtrace captures snapshots of the physical call stack.
//
// A snapshot is taken synchronously at the call site with Capture and carried
// around as an opaque Trace value. Resolution of program counters to function
// names, files and lines is deferred until the Trace is rendered, so capturing
// is cheap relative to formatting.
//
// Capture never fails. On platforms or build modes where caller information is
// unavailable the Trace is simply empty; an empty Trace is valid and renders
// as "[]".
//
// Basic usage:
//
//	bt := backtrace.Capture()
//	fmt.Println(bt) // [pkg.fn file.go:42, pkg.caller file.go:10, ...]
package backtrace

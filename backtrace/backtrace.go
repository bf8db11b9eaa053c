package backtrace

import (
	"fmt"
	"runtime"
	"strings"
)

// maxDepth bounds how many frames a single capture can hold.
const maxDepth = 64

// Trace is an immutable snapshot of the call stack taken at the point
// Capture was called. The zero value is an empty snapshot.
type Trace struct {
	pcs []uintptr
}

// Frame is a single resolved call-stack entry.
type Frame struct {
	// Function is the fully qualified function name, e.g. "main.fetchUser".
	Function string

	// File is the full path of the source file.
	File string

	// Line is the line number within File.
	Line int
}

// Capture records the call stack of the calling goroutine, excluding Capture
// itself. It is synchronous, performs no I/O, and never fails; when the
// runtime cannot provide caller information the returned Trace is empty.
func Capture() Trace {
	var pcs [maxDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	trace := Trace{pcs: make([]uintptr, n)}
	copy(trace.pcs, pcs[:n])
	return trace
}

// Empty reports whether the snapshot holds no frames.
func (t Trace) Empty() bool {
	return len(t.pcs) == 0
}

// Frames resolves the captured program counters into human-readable frames,
// ordered innermost first. Resolution happens on every call; callers that
// render repeatedly should keep the result.
func (t Trace) Frames() []Frame {
	if len(t.pcs) == 0 {
		return nil
	}

	callersFrames := runtime.CallersFrames(t.pcs)
	frames := make([]Frame, 0, len(t.pcs))

	for {
		frame, more := callersFrames.Next()
		frames = append(frames, Frame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}

	return frames
}

// String renders the snapshot in a compact, single-line debug style:
//
//	[main.fetchUser user.go:42, main.main main.go:10]
//
// An empty snapshot renders as "[]".
func (t Trace) String() string {
	frames := t.Frames()

	parts := make([]string, 0, len(frames))
	for _, frame := range frames {
		parts = append(parts, fmt.Sprintf("%s %s:%d", frame.Function, trimPath(frame.File), frame.Line))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// trimPath reduces a full file path to its base name to keep the single-line
// rendering readable.
func trimPath(file string) string {
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		return file[i+1:]
	}
	return file
}

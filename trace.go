// trace.go — backtrace capture and the flat frame arena.
//
// Design goals:
//   - Accurate frames: runtime.Callers + runtime.CallersFrames (handles
//     inlining correctly), bounded depth, capture only on request.
//   - Arena storage: frames live in a flat slice with parent INDICES, not
//     pointer-linked nodes. The invariant Parent < i (root sentinel -1)
//     makes the slice an encoded forest, so rendering walks by index
//     arithmetic and the value survives serialization.
package xgxcond

import (
	"runtime"
	"strings"
)

// RootSentinel marks a frame with no parent in the arena.
const RootSentinel = -1

// defaultMaxDepth bounds capture so exceptional paths stay cheap.
const defaultMaxDepth = 64

// TraceFrame is one captured call site. Parent is the arena index of the
// caller frame, or RootSentinel.
type TraceFrame struct {
	Repr     string  // display form of the call, e.g. "resolve()"
	Function string  // fully-qualified function name
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	PC       uintptr // program counter of the call return
	Parent   int     // arena index of the parent frame, or RootSentinel
}

// Trace is an immutable captured call-stack snapshot: a forest encoded as a
// flat frame list with back-pointing parent indices.
type Trace struct {
	frames []TraceFrame
}

// NewTrace validates and adopts a frame list. Every parent index must be
// RootSentinel or reference an EARLIER frame; forward or self references
// fail with invalid_argument.
func NewTrace(frames []TraceFrame) (*Trace, error) {
	for i, fr := range frames {
		if fr.Parent != RootSentinel && (fr.Parent < 0 || fr.Parent >= i) {
			return nil, invalidArgumentf("trace frame %d: parent index %d must reference an earlier frame or the root sentinel", i, fr.Parent)
		}
	}
	out := make([]TraceFrame, len(frames))
	copy(out, frames)
	return &Trace{frames: out}, nil
}

// Len returns the number of captured frames.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.frames)
}

// Frames returns a defensive copy of the frame arena.
func (t *Trace) Frames() []TraceFrame {
	if t == nil || len(t.frames) == 0 {
		return nil
	}
	out := make([]TraceFrame, len(t.frames))
	copy(out, t.frames)
	return out
}

// depth returns the number of ancestors of frame i (roots are depth 0).
// Bounded by the arena length; the Parent < i invariant guarantees
// termination.
func (t *Trace) depth(i int) int {
	d := 0
	for p := t.frames[i].Parent; p != RootSentinel; p = t.frames[p].Parent {
		d++
	}
	return d
}

// ancestors returns the arena indices from the root of frame i's tree down
// to frame i itself.
func (t *Trace) ancestors(i int) []int {
	var rev []int
	for p := i; p != RootSentinel; p = t.frames[p].Parent {
		rev = append(rev, p)
	}
	out := make([]int, len(rev))
	for k, idx := range rev {
		out[len(rev)-1-k] = idx
	}
	return out
}

// CaptureTrace captures the current goroutine's call stack as a linear
// trace: the outermost frame is the root, and each frame's parent is its
// caller. skip=0 starts at the caller of CaptureTrace. Returns nil when
// nothing could be captured.
//
// Skip accounting matches the runtime contract: +2 skips runtime.Callers
// and CaptureTrace itself.
func CaptureTrace(skip int) *Trace {
	pc := make([]uintptr, defaultMaxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	resolved := runtime.CallersFrames(pc)
	inner := make([]TraceFrame, 0, n) // innermost first, as Callers yields
	for {
		fr, more := resolved.Next()
		inner = append(inner, TraceFrame{
			Repr:     callRepr(fr.Function),
			Function: fr.Function,
			File:     fr.File,
			Line:     fr.Line,
			PC:       fr.PC,
		})
		if !more {
			break
		}
	}

	// Reverse to root-first order and link each frame to its caller.
	frames := make([]TraceFrame, len(inner))
	for i := range inner {
		frames[i] = inner[len(inner)-1-i]
		frames[i].Parent = i - 1 // -1 for the root
	}
	return &Trace{frames: frames}
}

// Call references the invoking call-site expression of a condition.
// Display-only: it feeds the "in <call> at <file>:<line>" suffix.
type Call struct {
	Repr string // display form, e.g. "LoadConfig()"
	File string // source file, "" when unresolvable
	Line int
}

// CaptureCall records the caller's call site. skip=0 names the caller of
// CaptureCall. Returns nil when the runtime cannot resolve the site.
func CaptureCall(skip int) *Call {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}
	name := ""
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return &Call{Repr: callRepr(name), File: file, Line: line}
}

// callRepr shortens a fully-qualified function name to its base identifier
// with call parens: "pkg/path.(*T).Method" → "Method()".
func callRepr(qualified string) string {
	if qualified == "" {
		return "<unknown>()"
	}
	name := qualified
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name + "()"
}

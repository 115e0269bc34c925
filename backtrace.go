// backtrace.go — rendering a Trace for display.
//
// Four modes:
//   - full:     every frame, numbered, tree-aligned by depth.
//   - branch:   only the path from the deepest leaf back to its root — the
//     usual "this is the call chain that led here" view.
//   - collapse: branch with consecutive identical frames merged into one
//     entry carrying a repeat count.
//   - reminder: a fixed one-line hint instead of frame content.
//
// An empty trace, or a trace whose single frame is rootless, renders to
// nothing in EVERY mode: the second return value is false and callers omit
// the backtrace section entirely.
//
// The glyph set and numbering layout are cosmetic conventions, exposed as a
// variable rather than promised as a contract.
package xgxcond

import (
	"fmt"
	"strconv"
	"strings"
)

// BacktraceMode selects how a Trace is displayed.
type BacktraceMode string

const (
	BacktraceFull     BacktraceMode = "full"
	BacktraceBranch   BacktraceMode = "branch"
	BacktraceCollapse BacktraceMode = "collapse"
	BacktraceReminder BacktraceMode = "reminder"
)

// DefaultBacktraceMode is the fallback when no (or an invalid) mode is
// configured.
const DefaultBacktraceMode = BacktraceBranch

// ParseBacktraceMode validates a raw mode string. Unknown values fail with
// invalid_argument; callers on the configuration path downgrade that to a
// warning plus DefaultBacktraceMode (see Session and condcfg).
func ParseBacktraceMode(raw string) (BacktraceMode, error) {
	switch m := BacktraceMode(raw); m {
	case BacktraceFull, BacktraceBranch, BacktraceCollapse, BacktraceReminder:
		return m, nil
	default:
		return "", invalidArgumentf("unsupported backtrace mode %q (want reminder, branch, collapse, or full)", raw)
	}
}

// GlyphSet holds the tree-drawing glyphs used by the full mode.
type GlyphSet struct {
	Vertical string // continuation column under an ancestor with later siblings
	Corner   string // a frame hanging off its parent
	Leaf     string // a root frame's own bullet
}

// TreeGlyphs is the rendering glyph set. Cosmetic; override freely.
var TreeGlyphs = GlyphSet{Vertical: "│ ", Corner: "└─", Leaf: "─"}

// ReminderText is the fixed hint emitted by the reminder mode.
const ReminderText = `Set backtrace mode "full" to display the entire call tree.`

// RenderBacktrace renders tr under the given mode. ok is false when the
// trace carries nothing worth showing (nil, empty, or a single rootless
// frame); the string is then empty and callers must omit the section.
// An unknown mode renders as DefaultBacktraceMode; configuration parsing is
// where invalid modes get rejected.
func RenderBacktrace(tr *Trace, mode BacktraceMode) (string, bool) {
	if tr.Len() == 0 {
		return "", false
	}
	if tr.Len() == 1 && tr.frames[0].Parent == RootSentinel {
		return "", false
	}
	switch mode {
	case BacktraceReminder:
		return ReminderText, true
	case BacktraceFull:
		return renderFull(tr), true
	case BacktraceCollapse:
		return renderBranch(tr, true), true
	default:
		return renderBranch(tr, false), true
	}
}

// renderFull renders every frame as a numbered, depth-aligned tree. A
// frame's indent column shows a vertical bar while the corresponding
// ancestor still has siblings below.
func renderFull(tr *Trace) string {
	n := len(tr.frames)
	children := make([][]int, n)
	var roots []int
	for i, fr := range tr.frames {
		if fr.Parent == RootSentinel {
			roots = append(roots, i)
		} else {
			children[fr.Parent] = append(children[fr.Parent], i)
		}
	}
	isLast := func(i int) bool {
		sibs := roots
		if p := tr.frames[i].Parent; p != RootSentinel {
			sibs = children[p]
		}
		return sibs[len(sibs)-1] == i
	}

	numw := len(strconv.Itoa(n))
	var b strings.Builder
	for i, fr := range tr.frames {
		path := tr.ancestors(i)
		var cols strings.Builder
		for _, a := range path[:len(path)-1] {
			if isLast(a) {
				cols.WriteString(strings.Repeat(" ", displayWidth(TreeGlyphs.Vertical)))
			} else {
				cols.WriteString(TreeGlyphs.Vertical)
			}
		}
		glyph := TreeGlyphs.Leaf
		if fr.Parent != RootSentinel {
			glyph = TreeGlyphs.Corner
		}
		fmt.Fprintf(&b, "%*d. %s%s%s\n", numw, i+1, cols.String(), glyph, fr.Repr)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderBranch renders the root-to-leaf path of the deepest frame. With
// collapse, consecutive frames with identical display forms merge into one
// entry with a repeat count.
func renderBranch(tr *Trace, collapse bool) string {
	deepest, best := 0, -1
	for i := range tr.frames {
		// Ties resolve to the later frame: the most recent capture wins.
		if d := tr.depth(i); d >= best {
			deepest, best = i, d
		}
	}
	path := tr.ancestors(deepest)

	type entry struct {
		index int // original arena index of the first occurrence
		repr  string
		count int
	}
	var entries []entry
	for _, idx := range path {
		repr := tr.frames[idx].Repr
		if collapse && len(entries) > 0 && entries[len(entries)-1].repr == repr {
			entries[len(entries)-1].count++
			continue
		}
		entries = append(entries, entry{index: idx, repr: repr, count: 1})
	}

	numw := len(strconv.Itoa(len(tr.frames)))
	var b strings.Builder
	for k, e := range entries {
		glyph := TreeGlyphs.Leaf
		if k > 0 {
			glyph = TreeGlyphs.Corner
		}
		suffix := ""
		if e.count > 1 {
			suffix = fmt.Sprintf(" (x%d)", e.count)
		}
		fmt.Fprintf(&b, "%*d. %s%s%s%s\n", numw, e.index+1, strings.Repeat(indentPrefix, k), glyph, e.repr, suffix)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// chain.go — walking the causal chain and prefixing each block.
//
// Layout rules:
//   - The head condition renders its FULL assembled message; ancestors show
//     their header only (body/footer are not re-displayed).
//   - Prefixes: "Error"/"Warning"/"Message" for the head, "Caused by
//     <kind>" for ancestors, plus "in <call>" and, when locations are
//     shown, "at <file>:<line>".
//   - The message breaks onto its own line below the prefix when it is
//     indented, when a source location was appended, or when the prefix
//     alone exceeds half the configured display width.
//   - A condition with no message and no call contributes nothing.
//   - Walking stops at the first ancestor whose classification does not
//     include the error base kind.
package xgxcond

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BuildChainMessage renders cnd and every error-classified ancestor as
// stacked prefixed blocks.
func (s *Session) BuildChainMessage(cnd Condition) (string, error) {
	var blocks []string
	block, err := s.prefixed(cnd, false)
	if err != nil {
		return "", err
	}
	if block != "" {
		blocks = append(blocks, block)
	}
	for _, parent := range Ancestors(cnd) {
		block, err = s.prefixed(parent, true)
		if err != nil {
			return "", err
		}
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n"), nil
}

// prefixed renders one condition as a prefixed block, or "" when it
// contributes nothing.
func (s *Session) prefixed(cnd Condition, isParent bool) (string, error) {
	kind := cnd.Class().Kind()
	var prefix string
	if isParent {
		prefix = "Caused by " + string(kind)
	} else {
		prefix = capitalize(string(kind))
	}

	var msg string
	var err error
	indent := false
	if isParent {
		// Ancestors re-display their header only, always nested.
		var lines []string
		lines, err = s.registry().Header(cnd)
		if err != nil {
			return "", err
		}
		indent = true
		msg = JoinLines(lines)
		if msg != "" {
			msg = indentLines(msg)
		}
	} else {
		indent = hasParent(cnd)
		msg, err = s.registry().Assemble(cnd, AssembleOptions{
			Indent:    indent,
			CLIFormat: s.Options.CLIFormat,
			Formatter: s.Options.Formatter,
		})
		if err != nil {
			return "", err
		}
	}
	msg = strings.TrimSuffix(msg, "\n")

	call := cnd.Call()
	if msg == "" && call == nil {
		return "", nil
	}

	hasLocation := false
	if call != nil {
		prefix += " in `" + call.Repr + "`"
		if s.Options.ShowLocations && call.File != "" {
			prefix += fmt.Sprintf(" at %s:%d", call.File, call.Line)
			hasLocation = true
		}
	}
	if msg == "" {
		return prefix, nil
	}

	if indent || hasLocation || displayWidth(prefix) > s.width()/2 {
		return prefix + ":\n" + msg, nil
	}
	return prefix + ": " + msg, nil
}

// hasParent reports whether cnd carries a causal parent of any kind; the
// head indents whenever a chain follows, error-classified or not.
func hasParent(cnd Condition) bool {
	ec, ok := cnd.(ErrorCondition)
	return ok && ec.Parent() != nil
}

// Ancestors returns cnd's causal ancestors in walking order, stopping
// BEFORE the first ancestor that is not error-classified. Bounded to guard
// against cyclic chains, which the model forbids but cannot enforce.
func Ancestors(cnd Condition) []Condition {
	const maxChain = 1 << 10
	var out []Condition
	cur := cnd
	for len(out) < maxChain {
		ec, ok := cur.(ErrorCondition)
		if !ok {
			break
		}
		parent := ec.Parent()
		if parent == nil || parent.Class().Kind() != KindError {
			break
		}
		out = append(out, parent)
		cur = parent
	}
	return out
}

// RootCause returns the deepest error-classified condition in cnd's chain
// (cnd itself when it has no error ancestors).
func RootCause(cnd Condition) Condition {
	anc := Ancestors(cnd)
	if len(anc) == 0 {
		return cnd
	}
	return anc[len(anc)-1]
}

// displayWidth measures terminal columns, not bytes: prefixes may carry
// wide or combining runes from call representations.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

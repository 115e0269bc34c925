// assemble.go — combining header, body, and footer into the final message.
//
// Behavior:
//   - lines = header ++ body ++ footer (sequence concatenation).
//   - use_cli_format=false → plain newline join; bullets are applied only
//     where a part was produced through FormatBullets already.
//   - use_cli_format=true → delegate to the injected rich Formatter,
//     selecting its error-vs-warning sub-mode from the base kind. A missing
//     formatter falls back to the plain join: display must not fail because
//     styling is unavailable.
//   - Indent prefixes every line (internal newlines included) with two
//     spaces, for nesting a message under a parent's prefix.
package xgxcond

import "strings"

// indentPrefix is the two-space nesting unit used by chain display.
const indentPrefix = "  "

// AssembleOptions tune one assembly pass.
type AssembleOptions struct {
	// Indent prefixes every output line with two spaces.
	Indent bool

	// CLIFormat forces rich formatting even when the condition itself does
	// not request it (the session-level toggle maps here).
	CLIFormat bool

	// Formatter renders the assembled lines when rich formatting applies.
	Formatter Formatter
}

// Assemble computes the condition's full message: header, body, and footer
// resolved through this registry, joined per the formatting mode. On the
// rich path the body keeps its bullet roles, so the injected Formatter (not
// the plain transform) decides glyphs and styling; header and footer lines
// travel as unnamed bullets. Zero resolved parts yield the empty string.
// Errors from a broken body override propagate unmasked.
func (r *Registry) Assemble(cnd Condition, opts AssembleOptions) (string, error) {
	header, err := r.Header(cnd)
	if err != nil {
		return "", err
	}
	footer, err := r.Footer(cnd)
	if err != nil {
		return "", err
	}

	if (cnd.UseCLIFormat() || opts.CLIFormat) && opts.Formatter != nil {
		body, err := r.bodyAsBullets(cnd)
		if err != nil {
			return "", err
		}
		bullets := make([]Bullet, 0, len(header)+len(body)+len(footer))
		bullets = append(bullets, Lines(header...)...)
		bullets = append(bullets, body...)
		bullets = append(bullets, Lines(footer...)...)
		if len(bullets) == 0 {
			return "", nil
		}
		indent := 0
		if opts.Indent {
			indent = len(indentPrefix)
		}
		out, err := opts.Formatter.Format(bullets, cnd.Class().Kind(), indent)
		if err != nil {
			return "", err
		}
		if opts.Indent {
			out = indentLines(out)
		}
		return out, nil
	}

	body, err := r.Body(cnd)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(header)+len(body)+len(footer))
	lines = append(lines, header...)
	lines = append(lines, body...)
	lines = append(lines, footer...)
	if len(lines) == 0 {
		return "", nil
	}
	out := JoinLines(lines)
	if opts.Indent {
		out = indentLines(out)
	}
	return out, nil
}

// RenderMessage is the pure default rendering of a condition: default
// registry, plain formatting, no indent. It is what a host runtime's
// "get displayable message" hook should return for conditions built here.
func RenderMessage(cnd Condition) (string, error) {
	return DefaultRegistry.Assemble(cnd, AssembleOptions{})
}

// indentLines prefixes every line of s, internal newlines included.
func indentLines(s string) string {
	if s == "" {
		return s
	}
	return indentPrefix + strings.ReplaceAll(s, "\n", "\n"+indentPrefix)
}

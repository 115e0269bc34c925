package clifmt

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/xgx-io/xgx-condition"
)

// Formatter renders bullet lines with colored glyphs. The zero value is
// usable (no color, no width budget); New returns the stock configuration.
type Formatter struct {
	// Color toggles ANSI styling. fatih/color additionally disables itself
	// on non-terminal outputs via its global NoColor detection.
	Color bool

	// Width is the total line budget including indent; 0 disables wrapping.
	Width int
}

// New returns a colored formatter with the default width budget.
func New() *Formatter {
	return &Formatter{Color: true, Width: xgxcond.DefaultWidth}
}

// style pairs the display glyph with its color for one bullet role.
type style struct {
	glyph string
	color *color.Color
}

var styles = map[xgxcond.Role]style{
	xgxcond.RoleBullet: {glyph: "•"},
	xgxcond.RoleInfo:   {glyph: "ℹ", color: color.New(color.FgBlue)},
	xgxcond.RoleCross:  {glyph: "✖", color: color.New(color.FgRed)},
	xgxcond.RoleTick:   {glyph: "✔", color: color.New(color.FgGreen)},
	xgxcond.RoleAlert:  {glyph: "!", color: color.New(color.FgYellow)},
	xgxcond.RoleArrow:  {glyph: "→", color: color.New(color.FgCyan)},
}

var headlineStyles = map[xgxcond.Kind]*color.Color{
	xgxcond.KindError:   color.New(color.FgRed, color.Bold),
	xgxcond.KindWarning: color.New(color.FgYellow, color.Bold),
	xgxcond.KindMessage: color.New(color.Bold),
}

// Format renders the bullets as one block. The first unnamed line is styled
// as the headline for the given kind; glyph roles get their colored symbol;
// break-role lines continue the previous bullet unprefixed. Text is
// unescaped ("{{" and "}}" become literal braces) and wrapped to the width
// budget minus the indent already consumed on the left.
func (f *Formatter) Format(bullets []xgxcond.Bullet, kind xgxcond.Kind, indent int) (string, error) {
	var out []string
	headlineDone := false
	for _, b := range bullets {
		text := unescape(b.Text)
		switch b.Role {
		case xgxcond.RoleNone:
			for _, line := range strings.Split(text, "\n") {
				if !headlineDone {
					headlineDone = true
					out = append(out, f.paint(headlineStyles[kind], line))
					continue
				}
				out = append(out, f.wrap(line, indent, "")...)
			}
		case xgxcond.RoleBreak:
			out = append(out, f.wrap(text, indent, "")...)
		default:
			st, ok := styles[b.Role]
			if !ok {
				return "", fmt.Errorf("unrecognized bullet role %q", string(b.Role))
			}
			prefix := f.paint(st.color, st.glyph) + " "
			out = append(out, f.wrap(text, indent, prefix)...)
		}
	}
	return strings.Join(out, "\n"), nil
}

// paint applies c to s when coloring is on. A nil style passes through.
func (f *Formatter) paint(c *color.Color, s string) string {
	if !f.Color || c == nil {
		return s
	}
	return c.Sprint(s)
}

// wrap greedily wraps text into the width budget, prefixing the first line
// and aligning continuations under the text start. Measurement uses display
// columns, not bytes.
func (f *Formatter) wrap(text string, indent int, prefix string) []string {
	cont := strings.Repeat(" ", runewidth.StringWidth("• "))
	if prefix == "" {
		cont = ""
	}
	limit := f.Width - indent
	if f.Width <= 0 || runewidth.StringWidth(prefix+text) <= limit {
		return []string{prefix + text}
	}

	var lines []string
	cur := prefix
	curw := runewidth.StringWidth(prefix)
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		switch {
		case cur == prefix || cur == cont:
			cur += word
			curw += w
		case curw+1+w <= limit:
			cur += " " + word
			curw += 1 + w
		default:
			lines = append(lines, cur)
			cur = cont + word
			curw = runewidth.StringWidth(cont) + w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// unescape collapses doubled braces into literals so interpolation-style
// text renders as written.
func unescape(s string) string {
	s = strings.ReplaceAll(s, "{{", "{")
	return strings.ReplaceAll(s, "}}", "}")
}

var _ xgxcond.Formatter = (*Formatter)(nil)

// Package clifmt is the reference rich Formatter for xgx-condition: it
// renders role-tagged bullet lines with colored glyphs, honors an indent
// and width budget, and owns the escaping of interpolation syntax ("{{"
// and "}}" collapse to literal braces).
//
// The core never depends on this package; it is injected through
// xgxcond.Options.Formatter (or per Assemble call) wherever rich terminal
// output is wanted.
package clifmt

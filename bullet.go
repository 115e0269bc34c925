// bullet.go — role-tagged bullet lines and the plain text transform.
//
// Contract:
//   - Input is an ordered sequence of (role, text) pairs.
//   - A fully unnamed sequence is promoted to "*" bullets.
//   - Output is a line sequence; callers join with newlines. An empty input
//     yields an empty (nil) sequence, which is NOT the same as one empty
//     line — chain display relies on the distinction.
//
// Rich rendering (colored glyphs, wrapping) is a separate capability behind
// the Formatter interface; the clifmt subpackage ships the reference
// implementation. The plain transform here renders role characters as-is.
package xgxcond

import "strings"

// Role names the visual function of one bullet line.
type Role string

const (
	// RoleNone marks an unnamed element: emitted without prefix, acting as
	// a title or subtitle line.
	RoleNone Role = ""

	RoleBullet Role = "*" // generic list bullet
	RoleInfo   Role = "i" // informational note
	RoleCross  Role = "x" // problem / failure item
	RoleTick   Role = "v" // success / satisfied item
	RoleAlert  Role = "!" // warning item
	RoleArrow  Role = ">" // pointer / suggestion

	// RoleBreak emits its text as its own unprefixed line, visually
	// continuing the previous bullet.
	RoleBreak Role = " "
)

// knownRoles gates FormatBullets input; anything else is invalid_argument.
var knownRoles = map[Role]struct{}{
	RoleNone:   {},
	RoleBullet: {},
	RoleInfo:   {},
	RoleCross:  {},
	RoleTick:   {},
	RoleAlert:  {},
	RoleArrow:  {},
	RoleBreak:  {},
}

// Bullet is a single role-tagged line of a structured message.
type Bullet struct {
	Role Role
	Text string
}

// Lines is a convenience for promoting plain strings to unnamed bullets.
func Lines(texts ...string) []Bullet {
	out := make([]Bullet, len(texts))
	for i, t := range texts {
		out[i] = Bullet{Role: RoleNone, Text: t}
	}
	return out
}

// normalizeBullets validates roles and applies the promotion rule: when NO
// element carries a role, every element becomes a "*" bullet. Returns a new
// slice; an unrecognized role fails with invalid_argument. Both the plain
// transform below and the rich-formatting path share this step, so a rich
// Formatter always receives validated, already-promoted roles.
func normalizeBullets(bullets []Bullet) ([]Bullet, error) {
	if len(bullets) == 0 {
		return nil, nil
	}
	allUnnamed := true
	for _, b := range bullets {
		if _, ok := knownRoles[b.Role]; !ok {
			return nil, invalidArgumentf("unrecognized bullet role %q", string(b.Role))
		}
		if b.Role != RoleNone {
			allUnnamed = false
		}
	}
	out := make([]Bullet, len(bullets))
	copy(out, bullets)
	if allUnnamed {
		for i := range out {
			out[i].Role = RoleBullet
		}
	}
	return out, nil
}

// FormatBullets renders bullets into a line sequence using the plain
// convention: "<symbol> text" for symbol roles, unprefixed text for unnamed
// and break roles. If NO element carries a role, every element is treated as
// a "*" bullet. An unrecognized role fails with invalid_argument.
//
// FormatBullets(nil) returns (nil, nil): no lines, distinct from [""].
func FormatBullets(bullets []Bullet) ([]string, error) {
	norm, err := normalizeBullets(bullets)
	if err != nil || norm == nil {
		return nil, err
	}
	out := make([]string, 0, len(norm))
	for _, b := range norm {
		switch b.Role {
		case RoleNone:
			// Titles keep internal newlines unprefixed.
			out = append(out, strings.Split(b.Text, "\n")...)
		case RoleBreak:
			out = append(out, b.Text)
		default:
			out = append(out, string(b.Role)+" "+b.Text)
		}
	}
	return out, nil
}

// JoinLines joins a line sequence into one block. An empty sequence joins to
// the empty string; callers that must distinguish "no lines" check the slice.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// Formatter is the narrow capability a rich text renderer must satisfy: turn
// role-tagged lines into one block of text for the given base kind, within
// an indent budget (columns already consumed on the left). Implementations
// own glyph choice, styling, and escaping of any interpolation syntax in the
// literal text.
type Formatter interface {
	Format(bullets []Bullet, kind Kind, indent int) (string, error)
}

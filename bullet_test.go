package xgxcond

import (
	"reflect"
	"testing"
)

func TestFormatBullets_EmptyInput(t *testing.T) {
	lines, err := FormatBullets(nil)
	if err != nil {
		t.Fatalf("FormatBullets(nil) error: %v", err)
	}
	if lines != nil {
		t.Fatalf("FormatBullets(nil) = %#v, want nil (no lines)", lines)
	}

	// One empty line is NOT the same as no lines.
	lines, err = FormatBullets([]Bullet{{Role: RoleNone, Text: ""}})
	if err != nil {
		t.Fatalf("FormatBullets([\"\"]) error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("FormatBullets([\"\"]) = %#v, want exactly one line", lines)
	}
}

func TestFormatBullets_UnnamedPromotedToStar(t *testing.T) {
	got, err := FormatBullets(Lines("foo", "bar"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"* foo", "* bar"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FormatBullets = %#v, want %#v", got, want)
	}

	// Promotion must be equivalent to tagging every element "*" explicitly.
	tagged, err := FormatBullets([]Bullet{
		{Role: RoleBullet, Text: "foo"},
		{Role: RoleBullet, Text: "bar"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, tagged) {
		t.Fatalf("unnamed %#v != star-tagged %#v", got, tagged)
	}
}

func TestFormatBullets_MixedRoles(t *testing.T) {
	got, err := FormatBullets([]Bullet{
		{Role: RoleInfo, Text: "foo"},
		{Role: RoleBullet, Text: "baz"},
		{Role: RoleCross, Text: "bar"},
		{Role: RoleTick, Text: "bam"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "i foo\n* baz\nx bar\nv bam"; JoinLines(got) != want {
		t.Fatalf("joined = %q, want %q", JoinLines(got), want)
	}
}

func TestFormatBullets_TitleAndBreak(t *testing.T) {
	got, err := FormatBullets([]Bullet{
		{Role: RoleNone, Text: "Problems found:\nsee below"},
		{Role: RoleCross, Text: "first"},
		{Role: RoleBreak, Text: "continued without a prefix"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"Problems found:",
		"see below",
		"x first",
		"continued without a prefix",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FormatBullets = %#v, want %#v", got, want)
	}
}

func TestFormatBullets_UnknownRole(t *testing.T) {
	_, err := FormatBullets([]Bullet{
		{Role: RoleInfo, Text: "foo"},
		{Role: Role("u"), Text: "bar"},
	})
	if err == nil {
		t.Fatalf("expected invalid_argument for role \"u\"")
	}
	if !IsInvalidArgument(err) {
		t.Fatalf("error code = %q, want %q", CodeOf(err), CodeInvalidArgument)
	}
}

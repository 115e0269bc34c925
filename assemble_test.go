package xgxcond

import (
	"reflect"
	"strings"
	"testing"
)

// stubFormatter records every call so tests can see what the assembly
// passed in.
type stubFormatter struct {
	lastBullets []Bullet
	lastKind    Kind
	lastIndent  int
}

func (s *stubFormatter) Format(bullets []Bullet, kind Kind, indent int) (string, error) {
	s.lastBullets = append([]Bullet(nil), bullets...)
	s.lastKind = kind
	s.lastIndent = indent
	texts := make([]string, len(bullets))
	for i, b := range bullets {
		texts[i] = "<" + b.Text + ">"
	}
	return strings.Join(texts, "\n"), nil
}

func TestAssemble_Indent(t *testing.T) {
	r := NewRegistry()
	cnd := mustNew(t, ErrorClass(), "line one", "body", "line two")

	got, err := r.Assemble(cnd, AssembleOptions{Indent: true})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	if want := "  line one\n  line two"; got != want {
		t.Fatalf("Assemble = %q, want %q", got, want)
	}
}

func TestAssemble_Pure(t *testing.T) {
	r := NewRegistry()
	cnd := mustNew(t, ErrorClass(), "stable", "body", []string{"a", "b"})

	first, err := r.Assemble(cnd, AssembleOptions{})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := r.Assemble(cnd, AssembleOptions{})
		if err != nil {
			t.Fatalf("Assemble error on pass %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("Assemble not stable: %q then %q", first, again)
		}
	}
}

func TestAssemble_CLIFormatDelegation(t *testing.T) {
	r := NewRegistry()
	fm := &stubFormatter{}

	t.Run("condition toggle", func(t *testing.T) {
		cnd := mustNew(t, WarningClass(), "careful", "use_cli_format", true)
		got, err := r.Assemble(cnd, AssembleOptions{Formatter: fm})
		if err != nil {
			t.Fatalf("Assemble error: %v", err)
		}
		if got != "<careful>" {
			t.Fatalf("Assemble = %q, want the formatter's output", got)
		}
		if fm.lastKind != KindWarning {
			t.Fatalf("formatter saw kind %q, want %q", fm.lastKind, KindWarning)
		}
	})

	t.Run("session toggle", func(t *testing.T) {
		cnd := mustNew(t, ErrorClass(), "boom")
		got, err := r.Assemble(cnd, AssembleOptions{CLIFormat: true, Formatter: fm})
		if err != nil {
			t.Fatalf("Assemble error: %v", err)
		}
		if got != "<boom>" {
			t.Fatalf("Assemble = %q", got)
		}
		if fm.lastKind != KindError {
			t.Fatalf("formatter saw kind %q, want %q", fm.lastKind, KindError)
		}
	})

	t.Run("missing formatter falls back to plain", func(t *testing.T) {
		cnd := mustNew(t, ErrorClass(), "boom", "use_cli_format", true)
		got, err := r.Assemble(cnd, AssembleOptions{})
		if err != nil {
			t.Fatalf("Assemble error: %v", err)
		}
		if got != "boom" {
			t.Fatalf("Assemble = %q, want plain join", got)
		}
	})

	t.Run("indent is passed through, then applied", func(t *testing.T) {
		cnd := mustNew(t, ErrorClass(), "boom", "use_cli_format", true)
		got, err := r.Assemble(cnd, AssembleOptions{Indent: true, Formatter: fm})
		if err != nil {
			t.Fatalf("Assemble error: %v", err)
		}
		if got != "  <boom>" {
			t.Fatalf("Assemble = %q", got)
		}
		if fm.lastIndent != len(indentPrefix) {
			t.Fatalf("formatter saw indent %d, want %d", fm.lastIndent, len(indentPrefix))
		}
	})
}

func TestAssemble_CLIFormatKeepsRoles(t *testing.T) {
	r := NewRegistry()
	fm := &stubFormatter{}

	t.Run("bullet body reaches the formatter untouched", func(t *testing.T) {
		cnd := mustNew(t, ErrorClass(), "boom",
			"body", []Bullet{
				{Role: RoleCross, Text: "first"},
				{Role: RoleInfo, Text: "hint"},
			},
			"footer", "see the manual",
			"use_cli_format", true,
		)
		if _, err := r.Assemble(cnd, AssembleOptions{Formatter: fm}); err != nil {
			t.Fatalf("Assemble error: %v", err)
		}
		want := []Bullet{
			{Role: RoleNone, Text: "boom"},
			{Role: RoleCross, Text: "first"},
			{Role: RoleInfo, Text: "hint"},
			{Role: RoleNone, Text: "see the manual"},
		}
		if !reflect.DeepEqual(fm.lastBullets, want) {
			t.Fatalf("formatter saw %#v, want %#v", fm.lastBullets, want)
		}
	})

	t.Run("fully unnamed body is promoted before handoff", func(t *testing.T) {
		cnd := mustNew(t, ErrorClass(), "boom",
			"body", Lines("a", "b"),
			"use_cli_format", true,
		)
		if _, err := r.Assemble(cnd, AssembleOptions{Formatter: fm}); err != nil {
			t.Fatalf("Assemble error: %v", err)
		}
		want := []Bullet{
			{Role: RoleNone, Text: "boom"},
			{Role: RoleBullet, Text: "a"},
			{Role: RoleBullet, Text: "b"},
		}
		if !reflect.DeepEqual(fm.lastBullets, want) {
			t.Fatalf("formatter saw %#v, want %#v", fm.lastBullets, want)
		}
	})

	t.Run("string body arrives as unnamed lines", func(t *testing.T) {
		cnd := mustNew(t, ErrorClass(), "boom", "body", "details", "use_cli_format", true)
		if _, err := r.Assemble(cnd, AssembleOptions{Formatter: fm}); err != nil {
			t.Fatalf("Assemble error: %v", err)
		}
		want := []Bullet{
			{Role: RoleNone, Text: "boom"},
			{Role: RoleNone, Text: "details"},
		}
		if !reflect.DeepEqual(fm.lastBullets, want) {
			t.Fatalf("formatter saw %#v, want %#v", fm.lastBullets, want)
		}
	})

	t.Run("invalid shapes still fail", func(t *testing.T) {
		cnd := mustNew(t, ErrorClass(), "boom", "body", []int{1}, "use_cli_format", true)
		_, err := r.Assemble(cnd, AssembleOptions{Formatter: fm})
		if err == nil || !IsInvalidArgument(err) {
			t.Fatalf("err = %v, want invalid_argument", err)
		}
	})

	t.Run("unknown role fails on the rich path too", func(t *testing.T) {
		cnd := mustNew(t, ErrorClass(), "boom",
			"body", []Bullet{{Role: Role("u"), Text: "bar"}},
			"use_cli_format", true,
		)
		_, err := r.Assemble(cnd, AssembleOptions{Formatter: fm})
		if err == nil || !IsInvalidArgument(err) {
			t.Fatalf("err = %v, want invalid_argument", err)
		}
	})
}

func TestRenderMessage_DefaultRegistry(t *testing.T) {
	cnd := mustNew(t, ErrorClass(), "plain message")
	got, err := RenderMessage(cnd)
	if err != nil {
		t.Fatalf("RenderMessage error: %v", err)
	}
	if got != "plain message" {
		t.Fatalf("RenderMessage = %q", got)
	}
}

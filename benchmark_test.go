package xgxcond

import "testing"

func BenchmarkRenderMessage(b *testing.B) {
	cnd, err := New(ErrorClass("bench_error"), "boom",
		"body", []string{"one", "two", "three"},
		"footer", "hint",
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := RenderMessage(cnd); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFormatBullets(b *testing.B) {
	bullets := []Bullet{
		{Role: RoleNone, Text: "header"},
		{Role: RoleCross, Text: "first"},
		{Role: RoleCross, Text: "second"},
		{Role: RoleInfo, Text: "hint"},
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := FormatBullets(bullets); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCaptureTrace(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if CaptureTrace(0) == nil {
			b.Fatal("empty capture")
		}
	}
}

func BenchmarkBuildChainMessage(b *testing.B) {
	s := NewSession(Options{})
	root, err := NewError(ErrorClass(), "root")
	if err != nil {
		b.Fatal(err)
	}
	ec, err := NewError(ErrorClass(), "head", "parent", root)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := s.BuildChainMessage(ec); err != nil {
			b.Fatal(err)
		}
	}
}

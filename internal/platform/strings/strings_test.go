package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty([]string{}, []string{"a"}); len(got) != 1 || got[0] != "a" {
		t.Fatalf("IfEmpty empty = %v", got)
	}
	if got := IfEmpty([]string{"x"}, []string{"a"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("IfEmpty nonempty = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if MustString("ok", "name") != "ok" {
		t.Fatalf("MustString changed value")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on blank")
		}
	}()
	_ = MustString("   ", "name")
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"pessoas":   "/pessoas",
		"/pessoas":  "/pessoas",
		"/pessoas/": "/pessoas",
		" pessoas ": "/pessoas",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on root")
		}
	}()
	_ = MustPrefix("/")
}

func TestLikePattern(t *testing.T) {
	cases := map[string]string{
		"Go":    "%Go%",
		"":      "%%",
		"50%":   `%50\%%`,
		"a_b":   `%a\_b%`,
		`C:\go`: `%C:\\go%`,
	}
	for in, want := range cases {
		if got := LikePattern(in); got != want {
			t.Fatalf("LikePattern(%q) = %q, want %q", in, got, want)
		}
	}
}

package modkit

import (
	"net/http"
	"testing"

	"peopledex/internal/modkit/httpkit"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" {
		t.Fatalf("zero build = %+v", b)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatalf("hooks must default to no-ops")
	}
	// no-op hooks should be callable
	b.Register(nil)
	if got := b.Subrouter(nil); got != nil {
		t.Fatalf("default subrouter should pass through, got %v", got)
	}
}

func TestBuild_OptionsApplied(t *testing.T) {
	t.Parallel()

	mw := func(next http.Handler) http.Handler { return next }
	registered := false

	b := Build(
		WithName("people"),
		WithPrefix("/pessoas"),
		WithMiddlewares(mw),
		WithSwagger(true),
		WithPorts("a-port-set"),
		WithRegister(func(httpkit.Router) { registered = true }),
	)

	if b.Name != "people" {
		t.Fatalf("name = %q", b.Name)
	}
	if b.Prefix != "/pessoas" {
		t.Fatalf("prefix = %q", b.Prefix)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("mw len = %d", len(b.Mw))
	}
	if !b.SwaggerOn {
		t.Fatalf("swagger should be on")
	}
	if b.Ports != "a-port-set" {
		t.Fatalf("ports = %v", b.Ports)
	}
	b.Register(nil)
	if !registered {
		t.Fatalf("register hook not applied")
	}
}

func TestDeps_ZeroOK(t *testing.T) {
	t.Parallel()

	var d Deps
	if !d.ZeroOK() {
		t.Fatalf("zero deps should be usable in tests")
	}
}

package module

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	modkit "peopledex/internal/modkit"
	"peopledex/internal/platform/config"
	phttp "peopledex/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestFromConfigDefaults(t *testing.T) {
	opts := FromConfig(config.New())
	if opts.Driver != "postgres" {
		t.Fatalf("driver = %q; want postgres", opts.Driver)
	}
	if opts.SearchLimit != 50 {
		t.Fatalf("search limit = %d; want 50", opts.SearchLimit)
	}
}

func TestFromConfigOverrides(t *testing.T) {
	t.Setenv("PEOPLE_DRIVER", "memory")
	t.Setenv("PEOPLE_SEARCH_LIMIT", "10")

	opts := FromConfig(config.New())
	if opts.Driver != "memory" {
		t.Fatalf("driver = %q; want memory", opts.Driver)
	}
	if opts.SearchLimit != 10 {
		t.Fatalf("search limit = %d; want 10", opts.SearchLimit)
	}
}

func TestFromConfigComposesWithOuterPrefix(t *testing.T) {
	// main hands the module a CORE_ scoped Conf
	t.Setenv("CORE_PEOPLE_DRIVER", "memory")
	t.Setenv("CORE_PEOPLE_SEARCH_LIMIT", "25")

	opts := FromConfig(config.New().Prefix("CORE_"))
	if opts.Driver != "memory" {
		t.Fatalf("driver = %q; want memory", opts.Driver)
	}
	if opts.SearchLimit != 25 {
		t.Fatalf("search limit = %d; want 25", opts.SearchLimit)
	}
}

func TestModuleMountsRoutes(t *testing.T) {
	t.Setenv("PEOPLE_DRIVER", "memory")

	m := New(modkit.Deps{Cfg: config.New()})
	if m.Name() != "people" {
		t.Fatalf("name = %q; want people", m.Name())
	}
	if m.Prefix() != "/pessoas" {
		t.Fatalf("prefix = %q; want /pessoas", m.Prefix())
	}

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pessoas",
		strings.NewReader(`{"apelido":"ana","nome":"Ana","nascimento":"1995-03-09"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d body=%s; want 201", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contagem-pessoas", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("count status = %d; want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "1" {
		t.Fatalf("count body = %q; want 1", got)
	}
}

func TestModulePortsExposeService(t *testing.T) {
	t.Setenv("PEOPLE_DRIVER", "memory")

	m := New(modkit.Deps{Cfg: config.New()})
	rec := httptest.NewRecorder()

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pessoas?t=", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("search status = %d; want 200", rec.Code)
	}
	var out []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.Ports() == nil {
		t.Fatalf("ports is nil")
	}
	if m.Service() == nil {
		t.Fatalf("service is nil")
	}
}

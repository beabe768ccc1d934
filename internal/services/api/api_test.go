package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"peopledex/internal/modkit/module"
	"peopledex/internal/platform/config"
	"peopledex/internal/platform/metrics"
	phttp "peopledex/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func newAPI(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("PEOPLE_DRIVER", "memory")
	t.Cleanup(module.Reset)

	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), Options{
		Config:  config.New(),
		Metrics: metrics.NewWith(prometheus.NewRegistry()),
	})
	return mux
}

func TestMountServesWireContract(t *testing.T) {
	h := newAPI(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pessoas",
		strings.NewReader(`{"apelido":"ana","nome":"Ana Souza","nascimento":"1995-03-09","stack":["go"]}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d body=%s; want 201", rec.Code, rec.Body.String())
	}
	loc := rec.Header().Get("Location")
	if loc != "/pessoas/1" {
		t.Fatalf("location = %q; want /pessoas/1", loc)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, loc, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d; want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pessoas?t=Souza", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("search status = %d; want 200", rec.Code)
	}
	var out []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode search: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("search rows = %d; want 1", len(out))
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contagem-pessoas", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("count status = %d; want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "1" {
		t.Fatalf("count body = %q; want 1", got)
	}
}

func TestMountServesMeta(t *testing.T) {
	h := newAPI(t)

	for _, path := range []string{"/healthz", "/ready", "/version", "/metrics"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d; want 200", path, rec.Code)
		}
	}
}

func TestMountEmitsRequestID(t *testing.T) {
	h := newAPI(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}
}

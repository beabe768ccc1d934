package http

import (
	"context"
	stdhttp "net/http"
	"testing"
	"time"

	"peopledex/internal/platform/config"

	"github.com/go-chi/chi/v5"
)

func TestNewServer_AddrFromEnvWithDefault(t *testing.T) {
	cfg := config.New().Prefix("CORE_")

	s := NewServer(cfg)
	if s.Addr() != ":8080" {
		t.Fatalf("default addr = %q", s.Addr())
	}

	t.Setenv("CORE_API_PORT", ":9999")
	s = NewServer(cfg)
	if s.Addr() != ":9999" {
		t.Fatalf("addr = %q, want :9999", s.Addr())
	}
}

func TestServer_RunAndShutdown(t *testing.T) {
	t.Setenv("CORE_API_PORT", "127.0.0.1:0")
	cfg := config.New().Prefix("CORE_")

	s := NewServer(cfg, func(m *chi.Mux) {
		m.Get("/healthz", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			w.WriteHeader(stdhttp.StatusOK)
		})
	})

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	// give the listener a beat, then stop it
	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("run did not return after shutdown")
	}
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	t.Setenv("CORE_API_PORT", "127.0.0.1:0")
	cfg := config.New().Prefix("CORE_")

	s := NewServer(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("run did not return after cancel")
	}
}

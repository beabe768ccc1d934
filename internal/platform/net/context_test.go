package net

import (
	"context"
	"errors"
	"net/http"
	"testing"

	perr "peopledex/internal/platform/errors"
)

func TestWithRequest_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequest(context.Background(), "req-123")
	if got := RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID = %q, want req-123", got)
	}
}

func TestWithRequest_EmptyIsNoop(t *testing.T) {
	t.Parallel()

	ctx := WithRequest(context.Background(), "")
	if got := RequestID(ctx); got != "" {
		t.Fatalf("RequestID on bare ctx = %q, want empty", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil is ok", nil, http.StatusOK},
		{"not found", perr.NotFoundID("person", 7), http.StatusNotFound},
		{"conflict", perr.Conflictf("nickname taken"), http.StatusUnprocessableEntity},
		{"invalid", perr.InvalidRequestf("bad body"), http.StatusUnprocessableEntity},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus = %d, want %d", got, tc.want)
			}
		})
	}
}

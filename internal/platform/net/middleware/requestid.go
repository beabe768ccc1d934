// Package middleware holds adapters and in house middlewares
package middleware

import (
	"net/http"

	pnet "peopledex/internal/platform/net"

	"github.com/google/uuid"
)

// RequestIDHeader is the canonical request id header
const RequestIDHeader = "X-Request-ID"

// RequestID propagates an inbound X-Request-ID or mints a fresh uuid,
// stores it on the context, and mirrors it on the response
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)
		ctx := pnet.WithRequest(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

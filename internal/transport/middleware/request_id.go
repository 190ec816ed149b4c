package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fablecraft/fablecraft-backend/pkg/ctxutil"
)

// RequestID tags every request with an id, stored in the context and echoed
// back in the X-Request-Id header. An id supplied by the caller wins, which
// lets editor clients correlate a retried save with its first attempt.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := inboundRequestID(r)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}

func inboundRequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-Id"); id != "" {
		return id
	}
	return uuid.New().String()
}

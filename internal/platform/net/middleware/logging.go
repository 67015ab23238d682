package middleware

import (
	"net/http"

	"tareeq/internal/platform/logger"
	pnet "tareeq/internal/platform/net"
)

// RequestLogger threads the chi request id into the logger context so every
// log line downstream carries request_id. Mount after chi's RequestID
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := pnet.RequestID(ctx); id != "" {
			ctx = logger.WithRequest(ctx, id)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-page-guard/internal/logger"
)

// withLogging writes one access log line per request. Only the path is
// logged; query strings and bodies may carry secrets.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

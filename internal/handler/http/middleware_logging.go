package http

import (
	"net/http"
	"time"

	"github.com/heart-smiles/heart-smiles-api/internal/logger"
)

// withLogging writes one access-log line per request after the rest of the
// pipeline has finished with it. The path is captured as received, before
// any prefix restoration, so the log reflects what the client actually sent.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := r.URL.Path
		query := r.URL.RawQuery

		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", path).
			Str("query", query).
			Int("status", lw.status).
			Int("bytes", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}

package http

import (
	"net/http"

	"github.com/heart-smiles/heart-smiles-api/internal/logger"
)

const (
	corsAllowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsAllowedHeaders = "Content-Type, Authorization, X-Trace-ID"
)

// withCORS enforces the cross-origin allow-list.
//
// Requests without an Origin header pass through untouched. Requests with an
// allowed origin get the CORS response headers reflecting that origin;
// preflight requests are answered directly with 204. Requests with a denied
// origin fail through the error responder with 403, never a silent 2xx,
// and receive no cross-origin headers.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		log := logger.FromRequest(r)

		if origin == "" {
			log.Debug().Msg("no origin header; cross-origin check skipped")
			next.ServeHTTP(w, r)
			return
		}

		if !h.allowedOrigins.Match(origin) {
			log.Warn().Str("origin", origin).Msg("origin blocked by CORS policy")
			h.respondError(w, r, ErrOriginNotAllowed, "origin: "+origin)
			return
		}

		log.Debug().Str("origin", origin).Msg("origin allowed")

		header := w.Header()
		header.Set("Access-Control-Allow-Origin", origin)
		header.Set("Access-Control-Allow-Credentials", "true")
		header.Set("Access-Control-Allow-Methods", corsAllowedMethods)
		header.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
		header.Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

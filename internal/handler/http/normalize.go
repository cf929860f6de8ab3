package http

import (
	"net/http"
	"strings"

	"github.com/heart-smiles/heart-smiles-api/internal/logger"
)

const apiPrefix = "/api"

// normalizePath reconciles a proxy-rewritten request path with the path the
// router expects.
//
// Depending on deployment topology the reverse proxy either delivers the
// request with the /api prefix intact, or strips the prefix before handing
// the request over while the original URL still carries it. In the stripped
// case (originalURL starts with the prefix but path does not) the prefix is
// restored. Anything else passes through unchanged, which makes the function
// idempotent: a path that already carries the prefix is never prefixed twice.
//
// Only the path is rewritten; the query string is left exactly as received.
func normalizePath(path, originalURL string) string {
	originalPath := originalURL
	if i := strings.IndexByte(originalPath, '?'); i >= 0 {
		originalPath = originalPath[:i]
	}

	if !hasAPIPrefix(originalPath) {
		return path
	}
	if hasAPIPrefix(path) {
		return path
	}

	return apiPrefix + path
}

func hasAPIPrefix(path string) bool {
	return path == apiPrefix || strings.HasPrefix(path, apiPrefix+"/")
}

// withPathNormalization rewrites r.URL.Path to its canonical form before the
// router dispatches on it. r.URL.RawQuery is never touched.
func (h *Handler) withPathNormalization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		normalized := normalizePath(r.URL.Path, r.RequestURI)
		if normalized != r.URL.Path {
			logger.FromRequest(r).Debug().
				Str("path", r.URL.Path).
				Str("normalized", normalized).
				Msg("restored stripped route prefix")
			r.URL.Path = normalized
		}

		next.ServeHTTP(w, r)
	})
}

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/internal/ratelimit"
	"github.com/heart-smiles/heart-smiles-api/internal/utils"
	"github.com/heart-smiles/heart-smiles-api/models"
)

// rateLimitMessage is the fixed advisory text returned with HTTP 429.
const rateLimitMessage = "Too many requests from this IP, please try again later."

// withRateLimit applies the fixed-window limiter to every request.
//
// The client identity honors exactly one trusted reverse-proxy hop (see
// ratelimit.ClientKey). Advisory RateLimit-* headers in the standard form are
// written on every response that passed through the limiter; rejected
// requests additionally carry Retry-After and the fixed advisory body.
// Rejections are terminal here and never escalate to the error responder.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := ratelimit.ClientKey(r.RemoteAddr, r.Header.Get("X-Forwarded-For"))
		decision := h.limiter.Admit(key, r.URL.Path)

		header := w.Header()
		header.Set("RateLimit-Limit", strconv.Itoa(decision.Limit))
		header.Set("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		header.Set("RateLimit-Reset", strconv.FormatInt(int64(time.Until(decision.ResetAt).Seconds()), 10))

		if !decision.Allowed {
			logger.FromRequest(r).Warn().
				Str("client", key).
				Str("path", r.URL.Path).
				Msg("rate limit exceeded")

			header.Set("Retry-After", strconv.FormatInt(int64(time.Until(decision.ResetAt).Seconds()), 10))
			utils.WriteJSON(w, models.RateLimitResponse{Message: rateLimitMessage}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

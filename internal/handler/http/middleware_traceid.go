package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/heart-smiles/heart-smiles-api/internal/utils"
)

// traceIDHeader carries the request correlation ID. Inbound values are kept
// as-is so the frontend and any proxy hop can stitch their logs to ours;
// requests arriving without one get a fresh time-ordered ID.
const traceIDHeader = "X-Trace-ID"

// withTraceID binds a request-scoped logger carrying the trace id into the
// request context and echoes the id on the response, so every log line
// produced further down the pipeline is attributable to one request.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewID()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}

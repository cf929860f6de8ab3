package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/heart-smiles/heart-smiles-api/internal/logger"
)

// withRecover converts a panic anywhere downstream into the structured error
// branch instead of tearing down the connection.
//
// The panic value and stack are always written to the operational log; the
// client sees the generic 500 body, with the underlying message and stack
// included only outside production mode. The process keeps serving other
// requests in every mode; a request-scoped fault is not a process-level one.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", rec)
			}
			err = withStatus(http.StatusInternalServerError, err)

			stack := string(debug.Stack())
			logger.FromRequest(r).Error().
				Str("stack", stack).
				Msg("panic recovered in request pipeline")

			h.respondError(w, r, err, stack)
		}()

		next.ServeHTTP(w, r)
	})
}

// sizeLimitStatus maps body-cap violations onto 413 before the generic 500
// fallback applies.
func sizeLimitStatus(err error) (int, bool) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, true
	}
	return 0, false
}

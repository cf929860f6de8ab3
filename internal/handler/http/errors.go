// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/internal/utils"
	"github.com/heart-smiles/heart-smiles-api/models"
)

// ErrOriginNotAllowed is raised by the cross-origin middleware when a
// request's declared origin fails the allow-list. It is surfaced through the
// error responder as a 403 rather than silently passing the request through.
var ErrOriginNotAllowed = errors.New("origin not allowed by CORS policy")

// apiError couples an error with the HTTP status it should produce.
// Handlers wrap failures in apiError when the default mapping table does not
// apply; the error responder honors the declared status.
type apiError struct {
	status int
	err    error
}

func (e *apiError) Error() string {
	return e.err.Error()
}

func (e *apiError) Unwrap() error {
	return e.err
}

// withStatus attaches an explicit HTTP status to err.
func withStatus(status int, err error) error {
	return &apiError{status: status, err: err}
}

// genericErrorMessage is the only error text production clients ever see.
const genericErrorMessage = "Something went wrong!"

// respondError is the terminal error branch of the pipeline.
//
// The response status is the error's declared status (via apiError) or the
// mapping table's verdict, defaulting to 500. The body carries a generic
// user-facing message; the underlying error text and diagnostic detail are
// included only outside production mode. Full detail is always written to
// the operational log regardless of mode.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, detail string) {
	status := http.StatusInternalServerError

	var ae *apiError
	if errors.As(err, &ae) {
		status = ae.status
	} else {
		status = statusFromError(err)
	}

	log := logger.FromRequest(r)
	log.Error().
		Err(err).
		Int("status", status).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("detail", detail).
		Msg("request failed")

	resp := models.ErrorResponse{Message: genericErrorMessage}
	if !h.production {
		resp.Error = err.Error()
		resp.Detail = detail
	}

	utils.WriteJSON(w, resp, status)
}

// knownEndpoints is the fixed list advertised by the not-found branch.
var knownEndpoints = []string{
	"/api/auth",
	"/api/participants",
	"/api/programs",
	"/api/staff",
	"/api/upload",
	"/api/export",
	"/api/import",
	"/api/health",
}

// notFound is the terminal branch for requests matching no configured route
// prefix. It echoes the offending method and path and enumerates the
// endpoint families the API does serve. Never escalated to the error branch.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Warn().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("route not found")

	utils.WriteJSON(w, models.NotFoundResponse{
		Message:            "Route not found",
		Method:             r.Method,
		Path:               r.URL.Path,
		AvailableEndpoints: knownEndpoints,
	}, http.StatusNotFound)
}

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// decodeJSON decodes the request body into v.
//
// Failures come back as status-carrying errors for the error responder:
// 413 when the body cap was exceeded, 400 for any other decoding problem.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if status, ok := sizeLimitStatus(err); ok {
			return withStatus(status, fmt.Errorf("request body too large: %w", err))
		}
		return withStatus(http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidJSONBody, err))
	}
	return nil
}

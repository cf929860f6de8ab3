package http

import (
	"errors"
	"net/http"

	"github.com/heart-smiles/heart-smiles-api/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrAuthNotConfigured:       http.StatusInternalServerError,
	service.ErrEmailAlreadyExists:      http.StatusConflict,
	service.ErrNoUserWasFound:          http.StatusUnauthorized,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotFound:                http.StatusNotFound,
	service.ErrFileNotFound:            http.StatusNotFound,

	ErrOriginNotAllowed: http.StatusForbidden,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map them to HTTP
// statuses; callers match with [errors.Is].
var (
	// ErrInvalidDataProvided indicates a request payload missing required
	// fields or carrying malformed values.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthNotConfigured is returned by every auth operation when the JWT
	// secret is absent. Startup proceeds without the secret; the fault
	// surfaces here, on first use.
	ErrAuthNotConfigured = errors.New("authentication is not configured: missing JWT secret")

	// ErrEmailAlreadyExists indicates a registration attempt with an email
	// that is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound indicates a login attempt for an unknown email.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrWrongPassword indicates a login attempt with a bad password.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenIsExpiredOrInvalid indicates a token that failed validation.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotFound indicates a registry lookup for an unknown record ID.
	ErrNotFound = errors.New("record not found")

	// ErrFileNotFound indicates a lookup for an unknown uploaded file.
	ErrFileNotFound = errors.New("file not found")
)

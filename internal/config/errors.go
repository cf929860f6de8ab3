package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a port outside the valid TCP range).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRateLimitConfigs indicates invalid rate limiting thresholds
	// (for example, a zero window or a non-positive request cap).
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)

// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// EnvProduction is the operating-mode value under which internal error detail
// is redacted from client responses and process-level faults do not exit.
const EnvProduction = "production"

// StructuredConfig is the top-level configuration container for the
// heart-smiles API server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// The env tag names deliberately mirror the hosting platform's contract
// (PORT, NODE_ENV, VERCEL_*, FRONTEND_URL) so the binary drops into the same
// deployment environment without translation.
type StructuredConfig struct {
	// App holds application-level settings: the JWT signing secret, the
	// operating mode, and the advertised API version.
	App App

	// Server holds network and serverless-mode settings for the inbound
	// HTTP transport.
	Server Server

	// CORS holds the configured cross-origin allow-list inputs. Absent
	// values are filtered out when the allow-list is built, never compared
	// as empty strings.
	CORS CORS

	// RateLimit holds the fixed-window rate limiting thresholds.
	RateLimit RateLimit

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// JWTSecret is the secret key used to sign and verify JWT tokens.
	// Required for any authenticated operation; its absence is logged as an
	// error at startup but does not prevent the server from starting;
	// auth operations fail explicitly at call time instead.
	// Env: JWT_SECRET
	JWTSecret string `env:"JWT_SECRET"`

	// Environment is the operating mode ("development", "production", ...).
	// Outside production the error responder exposes raw error detail and
	// process-level faults exit the process.
	// Env: NODE_ENV
	Environment string `env:"NODE_ENV" envDefault:"development"`

	// TokenDuration specifies how long an issued JWT remains valid.
	// Env: TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"24h"`

	// Version is the semantic version string advertised by the root
	// info endpoint.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION" envDefault:"1.0.0"`
}

// Server holds network settings for the inbound HTTP transport.
type Server struct {
	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT" envDefault:"5000"`

	// Vercel and VercelEnv are set by the serverless hosting platform.
	// When either is non-empty the process does not open a listener of its
	// own; the router is exposed as a per-request handler instead.
	// Env: VERCEL, VERCEL_ENV
	Vercel    string `env:"VERCEL"`
	VercelEnv string `env:"VERCEL_ENV"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" envDefault:"30s"`
}

// CORS holds the environment-derived members of the origin allow-list.
// Static literals (localhost origins, the production frontend domain, the
// preview-deployment pattern) live with the origin matcher itself.
type CORS struct {
	// FrontendURL is the deployed frontend origin, if any.
	// Env: FRONTEND_URL
	FrontendURL string `env:"FRONTEND_URL"`

	// VercelURL and NextPublicVercelURL are the platform-assigned
	// deployment hostnames (without scheme), contributed to the allow-list
	// when present.
	// Env: VERCEL_URL, NEXT_PUBLIC_VERCEL_URL
	VercelURL           string `env:"VERCEL_URL"`
	NextPublicVercelURL string `env:"NEXT_PUBLIC_VERCEL_URL"`
}

// RateLimit holds the fixed-window rate limiting thresholds.
type RateLimit struct {
	// Window is the length of the fixed counting window.
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`

	// MaxRequests is the number of admitted requests per client identity
	// per window.
	// Env: RATE_LIMIT_MAX
	MaxRequests int `env:"RATE_LIMIT_MAX" envDefault:"100"`
}

// IsProduction reports whether the server runs in production operating mode.
func (a App) IsProduction() bool {
	return a.Environment == EnvProduction
}

// Serverless reports whether the process runs under the serverless host
// contract and must not open its own listener.
func (s Server) Serverless() bool {
	return s.Vercel != "" || s.VercelEnv != ""
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

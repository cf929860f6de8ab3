package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-p server port
//	-env operating mode (development/production)
//	-jwt-secret JWT signing secret
//	-frontend-url deployed frontend origin for the CORS allow-list
//	-rate-limit-max admitted requests per client per window
//	-rate-limit-window rate limit window length (e.g., "15m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var port int
	var environment string
	var jwtSecret string
	var frontendURL string
	var rateLimitMax int
	var rateLimitWindow time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.IntVar(&port, "p", 0, "HTTP server port")
	flag.StringVar(&environment, "env", "", "Operating mode (development/production)")
	flag.StringVar(&jwtSecret, "jwt-secret", "", "JWT signing secret")
	flag.StringVar(&frontendURL, "frontend-url", "", "Deployed frontend origin")
	flag.IntVar(&rateLimitMax, "rate-limit-max", 0, "Admitted requests per client per window")
	flag.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Rate limit window (e.g., 15m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			JWTSecret:   jwtSecret,
			Environment: environment,
		},
		Server: Server{
			Port:           port,
			RequestTimeout: requestTimeout,
		},
		CORS: CORS{
			FrontendURL: frontendURL,
		},
		RateLimit: RateLimit{
			Window:      rateLimitWindow,
			MaxRequests: rateLimitMax,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heart-smiles/heart-smiles-api/internal/config"
	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/internal/service"
)

// ---- Helpers ----

// testConfig returns a config suitable for exercising the full pipeline.
func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			JWTSecret:     "test-secret",
			Environment:   "development",
			TokenDuration: time.Hour,
			Version:       "test",
		},
		Server: config.Server{Port: 5000},
		RateLimit: config.RateLimit{
			Window:      time.Minute,
			MaxRequests: 100,
		},
	}
}

// newTestHandler builds a Handler backed by the real in-memory services.
// Mutators adjust the config before construction.
func newTestHandler(t *testing.T, mutate ...func(cfg *config.StructuredConfig)) *Handler {
	t.Helper()

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	log := logger.Nop()
	return NewHandler(service.NewServices(cfg.App, log), cfg, log)
}

// registerAndToken registers a throwaway user through the router and returns
// the issued bearer token string.
func registerAndToken(t *testing.T, router http.Handler) string {
	t.Helper()

	body := `{"email":"tester@heartsmiles.org","password":"s3cret","name":"Tester"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// decodeBody unmarshals a recorded JSON response into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// ---- NewHandler ----

// TestNewHandler_BuildsLimiterAndOrigins verifies the constructor wires the
// limiter and the origin allow-list from config.
func TestNewHandler_BuildsLimiterAndOrigins(t *testing.T) {
	h := newTestHandler(t, func(cfg *config.StructuredConfig) {
		cfg.CORS.FrontendURL = "https://frontend.example.org"
	})

	require.NotNil(t, h.limiter)
	require.True(t, h.allowedOrigins.Match("https://frontend.example.org"))
	require.False(t, h.production)
}

// TestNewHandler_ProductionMode verifies the production flag follows NODE_ENV.
func TestNewHandler_ProductionMode(t *testing.T) {
	h := newTestHandler(t, func(cfg *config.StructuredConfig) {
		cfg.App.Environment = config.EnvProduction
	})

	require.True(t, h.production)
}

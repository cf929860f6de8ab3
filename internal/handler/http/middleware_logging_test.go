// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastLogEntry decodes the final JSON line written to buf.
func lastLogEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

// TestWithLogging_AccessLogFields verifies the access-log line records the
// method, path, query, response status and body size of the request.
func TestWithLogging_AccessLogFields(t *testing.T) {
	var buf bytes.Buffer
	h := captureHandler(t, &buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/participants?active=true", nil)
	rec := httptest.NewRecorder()

	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	entry := lastLogEntry(t, &buf)
	assert.Equal(t, "request completed", entry["message"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.Equal(t, "/api/participants", entry["path"])
	assert.Equal(t, "active=true", entry["query"])
	assert.Equal(t, float64(http.StatusCreated), entry["status"])
	assert.Equal(t, float64(len("created")), entry["bytes"])
	assert.Contains(t, entry, "duration")
}

// TestWithLogging_LogsPathAsReceived verifies the logged path is the one the
// client sent, even when a downstream stage rewrites the request URL.
func TestWithLogging_LogsPathAsReceived(t *testing.T) {
	var buf bytes.Buffer
	h := captureHandler(t, &buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = "/rewritten"
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/staff", nil))

	entry := lastLogEntry(t, &buf)
	assert.Equal(t, "/staff", entry["path"])
}

// TestWithLogging_CarriesTraceID verifies the access-log line inherits the
// trace id bound by the upstream middleware.
func TestWithLogging_CarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := captureHandler(t, &buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(traceIDHeader, "trace-log-1")
	rec := httptest.NewRecorder()

	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	entry := lastLogEntry(t, &buf)
	assert.Equal(t, "trace-log-1", entry["trace_id"])
}

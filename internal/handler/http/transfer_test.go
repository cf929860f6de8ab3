// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heart-smiles/heart-smiles-api/models"
)

// TestExportImport_RoundTrip verifies exporting from one server and
// importing into a fresh one reproduces the records, IDs included.
func TestExportImport_RoundTrip(t *testing.T) {
	source := newTestHandler(t).Init()
	sourceToken := registerAndToken(t, source)

	create := httptest.NewRequest(http.MethodPost, "/api/programs", strings.NewReader(`{"name":"Chess Club","active":true}`))
	create.Header.Set("Authorization", "Bearer "+sourceToken)
	rec := httptest.NewRecorder()
	source.ServeHTTP(rec, create)
	require.Equal(t, http.StatusCreated, rec.Code)

	var program models.Program
	decodeBody(t, rec, &program)

	// export
	export := httptest.NewRequest(http.MethodGet, "/api/export", nil)
	export.Header.Set("Authorization", "Bearer "+sourceToken)
	rec = httptest.NewRecorder()
	source.ServeHTTP(rec, export)
	require.Equal(t, http.StatusOK, rec.Code)
	snapshotJSON := rec.Body.Bytes()

	var snapshot models.Snapshot
	require.NoError(t, json.Unmarshal(snapshotJSON, &snapshot))
	require.Len(t, snapshot.Programs, 1)

	// import into a fresh server
	dest := newTestHandler(t).Init()
	destToken := registerAndToken(t, dest)

	imp := httptest.NewRequest(http.MethodPost, "/api/import", bytes.NewReader(snapshotJSON))
	imp.Header.Set("Authorization", "Bearer "+destToken)
	rec = httptest.NewRecorder()
	dest.ServeHTTP(rec, imp)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result models.ImportResult
	decodeBody(t, rec, &result)
	assert.Equal(t, 1, result.Programs)
	assert.Equal(t, 0, result.Participants)

	// the imported record keeps its ID
	rec = httptest.NewRecorder()
	dest.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/programs/"+program.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var imported models.Program
	decodeBody(t, rec, &imported)
	assert.Equal(t, program.Name, imported.Name)
}

// TestImport_Idempotent verifies importing the same snapshot twice does not
// duplicate records.
func TestImport_Idempotent(t *testing.T) {
	router := newTestHandler(t).Init()
	token := registerAndToken(t, router)

	snapshot := `{"participants":[{"id":"p-1","first_name":"Maya","last_name":"Rivera"}],"programs":[],"staff":[]}`

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(snapshot))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/participants", nil))

	var list []models.Participant
	decodeBody(t, rec, &list)
	assert.Len(t, list, 1)
}

// TestImport_InvalidRecordRejected verifies a snapshot containing an invalid
// record fails with 400.
func TestImport_InvalidRecordRejected(t *testing.T) {
	router := newTestHandler(t).Init()
	token := registerAndToken(t, router)

	snapshot := `{"participants":[{"id":"p-1","first_name":"NoLastName"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(snapshot))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestExport_RequiresAuth verifies the data dump is never anonymous.
func TestExport_RequiresAuth(t *testing.T) {
	router := newTestHandler(t).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/export", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestImport_RequiresAuth verifies anonymous imports are rejected.
func TestImport_RequiresAuth(t *testing.T) {
	router := newTestHandler(t).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

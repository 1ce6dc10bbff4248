package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewise/camcheck/application/service"
	"github.com/sitewise/camcheck/infrastructure/persistence"
	"github.com/sitewise/camcheck/internal/database"
)

func newAPIServer(t *testing.T, apiKeys []string) *APIServer {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := database.NewDatabase(ctx, "sqlite:///"+path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, persistence.AutoMigrate(db))

	checks := service.NewCheck(persistence.NewCheckStore(db), nil)
	return NewAPIServer(checks, apiKeys, 50, "test", nil)
}

func TestAPIServer_Healthz(t *testing.T) {
	handler := newAPIServer(t, nil).Handler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestAPIServer_CheckRoundTrip(t *testing.T) {
	handler := newAPIServer(t, nil).Handler()

	body := `{
		"target": {"distance": {"min": 0, "max": 10}, "light": {"min": 0, "max": 100}},
		"cameras": [{"id": "cam", "distance": {"min": 0, "max": 10}, "light": {"min": 0, "max": 100}}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checks", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var record struct {
		ID     int64 `json:"id"`
		Result struct {
			Sufficient bool `json:"sufficient"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.True(t, record.Result.Sufficient)

	getReq := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/checks/%d", record.ID), nil)
	getW := httptest.NewRecorder()
	handler.ServeHTTP(getW, getReq)
	assert.Equal(t, http.StatusOK, getW.Code)
}

func TestAPIServer_DeleteIsWriteProtected(t *testing.T) {
	handler := newAPIServer(t, []string{"secret"}).Handler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/checks/1", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// POST stays open even with keys configured.
	body := `{
		"target": {"distance": {"min": 0, "max": 10}, "light": {"min": 0, "max": 100}},
		"cameras": []
	}`
	postReq := httptest.NewRequest(http.MethodPost, "/api/v1/checks", bytes.NewBufferString(body))
	postW := httptest.NewRecorder()
	handler.ServeHTTP(postW, postReq)
	assert.Equal(t, http.StatusCreated, postW.Code)
}

func TestAPIServer_DeleteWithKey(t *testing.T) {
	handler := newAPIServer(t, []string{"secret"}).Handler()

	body := `{
		"target": {"distance": {"min": 0, "max": 10}, "light": {"min": 0, "max": 100}},
		"cameras": [{"id": "cam", "distance": {"min": 0, "max": 10}, "light": {"min": 0, "max": 100}}]
	}`
	postReq := httptest.NewRequest(http.MethodPost, "/api/v1/checks", bytes.NewBufferString(body))
	postW := httptest.NewRecorder()
	handler.ServeHTTP(postW, postReq)
	require.Equal(t, http.StatusCreated, postW.Code)

	var record struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(postW.Body.Bytes(), &record))

	delReq := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/checks/%d", record.ID), nil)
	delReq.Header.Set("X-API-KEY", "secret")
	delW := httptest.NewRecorder()
	handler.ServeHTTP(delW, delReq)
	assert.Equal(t, http.StatusNoContent, delW.Code)
}

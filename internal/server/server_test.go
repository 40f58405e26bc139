package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakvale/homestead/internal/catalog"
	"github.com/oakvale/homestead/internal/domain"
	"github.com/oakvale/homestead/internal/engine"
	"github.com/oakvale/homestead/internal/handler"
	"github.com/oakvale/homestead/internal/storage"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := storage.NewMemoryStore()
	game := engine.New(catalog.MustDefault(), store, "test", 1)
	return NewRouter(game, store)
}

func doJSON(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func stateFrom(t *testing.T, rec *httptest.ResponseRecorder) *domain.GameState {
	t.Helper()
	var resp handler.StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.State)
	return resp.State
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouterStateEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/state", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	state := stateFrom(t, rec)
	assert.Equal(t, 1, state.Day)
	assert.Len(t, state.Plots, domain.DefaultPlotCount)
}

func TestRouterFarmFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/plots/3/till", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	state := stateFrom(t, rec)
	assert.Equal(t, domain.PlotTilled, state.Plots[3].State)

	// Tilling the same plot again conflicts.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/plots/3/till", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouterActivityFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/activity",
		handler.PerformActivityRequest{Activity: "foraging"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/activity",
		handler.PerformActivityRequest{Activity: "mining"})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/activity/clear", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, stateFrom(t, rec).ActiveActivity)
}

func TestRouterSaveLoadFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/day/end", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/save", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/day/end", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 3, stateFrom(t, rec).Day)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/load", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, stateFrom(t, rec).Day)
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/nothing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/activity", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

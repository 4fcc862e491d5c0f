package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aishwary11/portfolio"
	"github.com/aishwary11/portfolio/storage"
)

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func TestPreferences_GetDefault(t *testing.T) {
	srv := newTestServer(t, storage.NewMemoryStorage(), nil)
	b := newBrowser(t, srv)

	rec := b.do(http.MethodGet, "/api/v1/preferences/portfolio-theme", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	got := decode[preferenceResponse](t, rec.Body.Bytes())
	assert.Equal(t, portfolio.ThemeKey, got.Key)
	assert.Equal(t, "dark", got.Value)
	assert.True(t, got.IsDefault)
}

func TestPreferences_SetGetDelete(t *testing.T) {
	backend := storage.NewMemoryStorage()
	srv := newTestServer(t, backend, nil)
	b := newBrowser(t, srv)

	rec := b.do(http.MethodPut, "/api/v1/preferences/portfolio-theme", `{"value":"light"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := backend.Get(context.Background(), b.id(), portfolio.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, `"light"`, stored.Value)

	got := decode[preferenceResponse](t, b.do(http.MethodGet, "/api/v1/preferences/portfolio-theme", "").Body.Bytes())
	assert.Equal(t, "light", got.Value)
	assert.False(t, got.IsDefault)

	assert.Contains(t, b.do(http.MethodGet, "/", "").Body.String(), "theme-light")

	rec = b.do(http.MethodDelete, "/api/v1/preferences/portfolio-theme", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	got = decode[preferenceResponse](t, b.do(http.MethodGet, "/api/v1/preferences/portfolio-theme", "").Body.Bytes())
	assert.Equal(t, "dark", got.Value)
	assert.True(t, got.IsDefault)

	rec = b.do(http.MethodDelete, "/api/v1/preferences/portfolio-theme", "")
	assert.Equal(t, http.StatusNoContent, rec.Code, "deleting an unset preference is not an error")
}

func TestPreferences_List(t *testing.T) {
	srv := newTestServer(t, storage.NewMemoryStorage(), nil)
	b := newBrowser(t, srv)

	b.do(http.MethodPut, "/api/v1/preferences/portfolio-theme", `{"value":"light"}`)

	rec := b.do(http.MethodGet, "/api/v1/preferences", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[[]preferenceResponse](t, rec.Body.Bytes())
	require.Len(t, got, 1)
	assert.Equal(t, portfolio.ThemeKey, got[0].Key)
	assert.Equal(t, "light", got[0].Value)
}

func TestPreferences_Errors(t *testing.T) {
	srv := newTestServer(t, storage.NewMemoryStorage(), nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown key get", http.MethodGet, "/api/v1/preferences/font-size", "", http.StatusNotFound},
		{"unknown key put", http.MethodPut, "/api/v1/preferences/font-size", `{"value":12}`, http.StatusNotFound},
		{"unknown key delete", http.MethodDelete, "/api/v1/preferences/font-size", "", http.StatusNotFound},
		{"value not allowed", http.MethodPut, "/api/v1/preferences/portfolio-theme", `{"value":"sepia"}`, http.StatusBadRequest},
		{"wrong type", http.MethodPut, "/api/v1/preferences/portfolio-theme", `{"value":true}`, http.StatusBadRequest},
		{"bad payload", http.MethodPut, "/api/v1/preferences/portfolio-theme", `{"value":`, http.StatusBadRequest},
		{"unknown field", http.MethodPut, "/api/v1/preferences/portfolio-theme", `{"theme":"dark"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newBrowser(t, srv).do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var body map[string]map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"]["message"])
		})
	}
}

func TestPreferences_StorageFailure(t *testing.T) {
	srv := newTestServer(t, failingStorage{}, nil)
	b := newBrowser(t, srv)

	assert.Equal(t, http.StatusInternalServerError, b.do(http.MethodGet, "/api/v1/preferences", "").Code)
	assert.Equal(t, http.StatusInternalServerError, b.do(http.MethodPut, "/api/v1/preferences/portfolio-theme", `{"value":"light"}`).Code)
}

func TestPreferences_NoStorage(t *testing.T) {
	store := portfolio.New(portfolio.WithLogger(quietLogger()))
	srv, err := NewServer(Config{Store: store})
	require.NoError(t, err)
	b := newBrowser(t, srv)

	rec := b.do(http.MethodGet, "/api/v1/preferences/portfolio-theme", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(portfolio.ErrNotDefined))
	assert.Equal(t, http.StatusBadRequest, statusFor(portfolio.ErrInvalidValue))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(portfolio.ErrStorageUnavailable))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errDiskFull))
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aishwary11/portfolio"
)

// preferenceResponse is the JSON shape of one preference.
type preferenceResponse struct {
	Key       string      `json:"key"`
	Value     interface{} `json:"value"`
	IsDefault bool        `json:"is_default"`
}

type setPreferenceRequest struct {
	Value interface{} `json:"value"`
}

func (s *Server) localFor(w http.ResponseWriter, r *http.Request) (*portfolio.LocalStore, bool) {
	local, err := s.store.Local(BrowserID(r.Context()))
	if err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, "Missing browser identity", err)
		return nil, false
	}
	return local, true
}

// handleListPreferences returns every defined preference of the browser,
// falling back to the default where nothing readable is stored.
func (s *Server) handleListPreferences(w http.ResponseWriter, r *http.Request) {
	local, ok := s.localFor(w, r)
	if !ok {
		return
	}

	items, err := local.Items(r.Context())
	if err != nil {
		s.respondWithError(w, r, statusFor(err), "Failed to list preferences", err)
		return
	}

	prefs := make([]preferenceResponse, 0, len(s.registry.Keys()))
	for _, key := range s.registry.Keys() {
		def, _ := s.registry.Lookup(key)
		prefs = append(prefs, s.decodeStored(def, items[key]))
	}
	s.respondWithJSON(w, r, http.StatusOK, prefs)
}

// handleGetPreference returns one preference, or its default when unset.
func (s *Server) handleGetPreference(w http.ResponseWriter, r *http.Request) {
	def, ok := s.definitionFor(w, r)
	if !ok {
		return
	}
	local, ok := s.localFor(w, r)
	if !ok {
		return
	}

	raw, err := local.GetItem(r.Context(), def.Key)
	if err != nil && !errors.Is(err, portfolio.ErrNotFound) {
		s.respondWithError(w, r, statusFor(err), "Failed to get preference", err)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, s.decodeStored(def, raw))
}

// handleSetPreference validates and stores one preference.
func (s *Server) handleSetPreference(w http.ResponseWriter, r *http.Request) {
	def, ok := s.definitionFor(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1024*1024)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req setPreferenceRequest
	if err := decoder.Decode(&req); err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	if err := s.registry.Validate(def.Key, req.Value); err != nil {
		s.respondWithError(w, r, statusFor(err), "Invalid preference value", err)
		return
	}

	data, err := json.Marshal(req.Value)
	if err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, "Invalid preference value", err)
		return
	}

	local, ok := s.localFor(w, r)
	if !ok {
		return
	}
	if err := local.SetItem(r.Context(), def.Key, string(data)); err != nil {
		s.respondWithError(w, r, statusFor(err), "Failed to set preference", err)
		return
	}

	s.respondWithJSON(w, r, http.StatusOK, preferenceResponse{Key: def.Key, Value: req.Value})
}

// handleDeletePreference removes a stored preference so it reads as its default.
func (s *Server) handleDeletePreference(w http.ResponseWriter, r *http.Request) {
	def, ok := s.definitionFor(w, r)
	if !ok {
		return
	}
	local, ok := s.localFor(w, r)
	if !ok {
		return
	}

	if err := local.RemoveItem(r.Context(), def.Key); err != nil {
		s.respondWithError(w, r, statusFor(err), "Failed to delete preference", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) definitionFor(w http.ResponseWriter, r *http.Request) (portfolio.Definition, bool) {
	key := chi.URLParam(r, "key")
	def, found := s.registry.Lookup(key)
	if !found {
		s.respondWithError(w, r, http.StatusNotFound, "Preference not defined", portfolio.ErrNotDefined)
		return portfolio.Definition{}, false
	}
	return def, true
}

// decodeStored turns stored JSON text into a response. Empty or malformed
// text reads as the default.
func (s *Server) decodeStored(def portfolio.Definition, raw string) preferenceResponse {
	resp := preferenceResponse{Key: def.Key, Value: def.DefaultValue, IsDefault: true}
	if raw == "" {
		return resp
	}

	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Warn("Error reading stored preference", "key", def.Key, "error", err)
		return resp
	}
	if err := s.registry.Validate(def.Key, v); err != nil {
		s.logger.Warn("Error reading stored preference", "key", def.Key, "error", err)
		return resp
	}
	return preferenceResponse{Key: def.Key, Value: v}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, portfolio.ErrNotDefined), errors.Is(err, portfolio.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, portfolio.ErrInvalidValue), errors.Is(err, portfolio.ErrInvalidKey), errors.Is(err, portfolio.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, portfolio.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError is a helper to send JSON error responses.
func (s *Server) respondWithError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	resp := map[string]interface{}{
		"error": map[string]string{
			"message": message,
		},
	}
	if err != nil {
		resp["error"].(map[string]string)["details"] = err.Error()
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("API Error", "status", status, "message", message, "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("API Error", "status", status, "message", message, "path", r.URL.Path, "error", err)
	}
	s.respondWithJSON(w, r, status, resp)
}

// respondWithJSON is a helper to send JSON responses.
func (s *Server) respondWithJSON(w http.ResponseWriter, _ *http.Request, status int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("Failed to marshal JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"Failed to marshal response"}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

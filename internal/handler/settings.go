package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/httputil"
	"atelier/internal/service"
)

// SettingsHandler handles site settings HTTP requests.
type SettingsHandler struct {
	settings *service.SettingsService
	logger   *slog.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settings *service.SettingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		logger:   logger,
	}
}

// Get retrieves the site settings
// GET /api/settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	httputil.RespondData(w, http.StatusOK, h.settings.Get(r.Context()))
}

// Update merges supplied fields into the site settings
// PUT /api/settings
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateSettingsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.settings.Update(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, settings)
}

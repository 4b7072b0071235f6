package handler

import (
	"net/http"
	"time"

	"atelier/internal/httputil"
)

// HealthCheck is a simple health check endpoint
// GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondData(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now(),
	})
}

package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/httputil"
	"atelier/internal/service"
)

// PortfolioHandler handles portfolio HTTP requests.
type PortfolioHandler struct {
	portfolio *service.PortfolioService
	logger    *slog.Logger
}

// NewPortfolioHandler creates a new portfolio handler.
func NewPortfolioHandler(portfolio *service.PortfolioService, logger *slog.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		portfolio: portfolio,
		logger:    logger,
	}
}

// List retrieves all portfolio items
// GET /api/portfolio
func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	httputil.RespondData(w, http.StatusOK, h.portfolio.List(r.Context()))
}

// Get retrieves a portfolio item by id
// GET /api/portfolio/{id}
func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.portfolio.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, item)
}

// Create creates a new portfolio item
// POST /api/portfolio
func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePortfolioRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.portfolio.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondData(w, http.StatusCreated, item)
}

// Update merges supplied fields into a portfolio item
// PUT /api/portfolio/{id}
func (h *PortfolioHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req service.UpdatePortfolioRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.portfolio.Update(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, item)
}

// Delete removes a portfolio item by id
// DELETE /api/portfolio/{id}
func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.portfolio.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondSuccess(w, http.StatusOK)
}

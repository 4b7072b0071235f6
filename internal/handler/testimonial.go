package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/httputil"
	"atelier/internal/service"
)

// TestimonialHandler handles testimonial HTTP requests.
type TestimonialHandler struct {
	testimonials *service.TestimonialService
	logger       *slog.Logger
}

// NewTestimonialHandler creates a new testimonial handler.
func NewTestimonialHandler(testimonials *service.TestimonialService, logger *slog.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		testimonials: testimonials,
		logger:       logger,
	}
}

// List retrieves all testimonials
// GET /api/testimonials
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	httputil.RespondData(w, http.StatusOK, h.testimonials.List(r.Context()))
}

// Get retrieves a testimonial by id
// GET /api/testimonials/{id}
func (h *TestimonialHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	testimonial, err := h.testimonials.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, testimonial)
}

// Create creates a new testimonial
// POST /api/testimonials
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTestimonialRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	testimonial, err := h.testimonials.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondData(w, http.StatusCreated, testimonial)
}

// Update merges supplied fields into a testimonial
// PUT /api/testimonials/{id}
func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req service.UpdateTestimonialRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	testimonial, err := h.testimonials.Update(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, testimonial)
}

// Delete removes a testimonial by id
// DELETE /api/testimonials/{id}
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.testimonials.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondSuccess(w, http.StatusOK)
}

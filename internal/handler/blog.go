package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/httputil"
	"atelier/internal/service"
)

// BlogHandler handles blog HTTP requests.
type BlogHandler struct {
	blog   *service.BlogService
	logger *slog.Logger
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(blog *service.BlogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		blog:   blog,
		logger: logger,
	}
}

// List retrieves all blog posts
// GET /api/blog
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	httputil.RespondData(w, http.StatusOK, h.blog.List(r.Context()))
}

// Get retrieves a blog post by id
// GET /api/blog/{id}
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	post, err := h.blog.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, post)
}

// Create creates a new blog post
// POST /api/blog
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateBlogPostRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.blog.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondData(w, http.StatusCreated, post)
}

// Update merges supplied fields into a blog post
// PUT /api/blog/{id}
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req service.UpdateBlogPostRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.blog.Update(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, post)
}

// Delete removes a blog post by id
// DELETE /api/blog/{id}
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.blog.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondSuccess(w, http.StatusOK)
}

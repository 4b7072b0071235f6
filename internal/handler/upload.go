package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/httputil"
	"atelier/internal/service"
)

// maxUploadBytes caps a single image upload.
const maxUploadBytes = 10 << 20

// UploadHandler accepts image uploads from the admin forms and returns
// the stored URL.
type UploadHandler struct {
	uploads *service.UploadService
	logger  *slog.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploads *service.UploadService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uploads: uploads,
		logger:  logger,
	}
}

// UploadResponse carries the public URL of a stored file.
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload stores a multipart file and returns its URL
// POST /api/upload
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	url, err := h.uploads.Save(header.Filename, file)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondData(w, http.StatusCreated, UploadResponse{URL: url})
}

package service

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"atelier/internal/domain"

	"github.com/google/uuid"
)

// allowedExtensions is the image extension allow-list for uploads.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// UploadService stores uploaded images on disk and hands back the public
// URL the content documents reference. The persistence layer only ever
// sees URL strings, never binary content.
type UploadService struct {
	dir        string
	publicPath string
	logger     *slog.Logger
}

// NewUploadService creates an upload service writing into dir. Stored
// files are addressable under publicPath ("/uploads").
func NewUploadService(dir, publicPath string, logger *slog.Logger) *UploadService {
	return &UploadService{
		dir:        dir,
		publicPath: publicPath,
		logger:     logger,
	}
}

// Save writes the uploaded file under a fresh random name, keeping only
// the original extension, and returns its public URL.
func (s *UploadService) Save(originalName string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: file type %q is not allowed", domain.ErrValidation, ext)
	}

	name := uuid.New().String() + ext
	dest := filepath.Join(s.dir, name)

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("%w: create upload: %v", domain.ErrStorage, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, src); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("%w: write upload: %v", domain.ErrStorage, err)
	}

	url := path.Join(s.publicPath, name)
	s.logger.Info("file uploaded", "name", name, "url", url)
	return url, nil
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File is a Store backed by one JSON file on disk. Documents are written
// with two-space indentation so they stay hand-editable.
type File struct {
	path string
}

// NewFile creates a file-backed store at path. The parent directory is
// created if needed.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &File{path: path}, nil
}

// Path returns the location of the backing file.
func (f *File) Path() string { return f.path }

// Load reads and unmarshals the file. Returns ErrNotExist when the file
// has not been created yet.
func (f *File) Load(_ context.Context, dest any) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotExist
		}
		return fmt.Errorf("read %s: %w", f.path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s: %w", f.path, err)
	}
	return nil
}

// Save marshals src and replaces the file contents. The document is
// written to a temp file first and renamed into place so a crash mid-write
// never leaves a truncated document behind.
func (f *File) Save(_ context.Context, src any) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

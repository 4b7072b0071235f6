package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileLoadMissingDocument(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "portfolio.json"))
	if err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}

	var dest []string
	if err := f.Load(context.Background(), &dest); !errors.Is(err, ErrNotExist) {
		t.Errorf("Load() error = %v, want ErrNotExist", err)
	}
}

func TestFileSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	f, err := NewFile(filepath.Join(t.TempDir(), "blog.json"))
	if err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}

	src := []map[string]any{{"id": float64(1), "title": "First"}}
	if err := f.Save(ctx, src); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	var dest []map[string]any
	if err := f.Load(ctx, &dest); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(dest) != 1 || dest[0]["title"] != "First" || dest[0]["id"] != float64(1) {
		t.Errorf("Load() = %+v", dest)
	}
}

func TestFileSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "settings.json")
	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}
	if err := f.Save(context.Background(), map[string]string{"siteName": "x"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("document missing after Save: %v", err)
	}
}

func TestFileSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(filepath.Join(dir, "testimonials.json"))
	if err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}
	if err := f.Save(context.Background(), []int{1, 2, 3}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "testimonials.json" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestFileLoadCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}

	var dest []string
	err = f.Load(context.Background(), &dest)
	if err == nil || errors.Is(err, ErrNotExist) {
		t.Errorf("Load() error = %v, want decode failure", err)
	}
}

func TestFileSaveIsIndented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}
	if err := f.Save(context.Background(), map[string]string{"siteName": "Chughtai Arts"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"siteName\": \"Chughtai Arts\"\n}"
	if string(data) != want {
		t.Errorf("document = %q, want %q", data, want)
	}
}

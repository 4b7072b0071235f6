package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"atelier/internal/config"
	"atelier/internal/seed"
	"atelier/internal/storage"

	"github.com/joho/godotenv"
)

// Writes the sample content documents into the data directory. Without
// -force, documents that already exist are left alone, matching the
// server's own first-use bootstrap.
func main() {
	force := flag.Bool("force", false, "Overwrite documents that already exist")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	// SAFETY: never clobber live content in production
	if cfg.Environment == "prod" && *force {
		log.Fatalf("BLOCKED: cannot run -force in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()
	documents := []struct {
		file    string
		content any
	}{
		{"portfolio.json", seed.Portfolio()},
		{"blog.json", seed.Blog()},
		{"testimonials.json", seed.Testimonials()},
		{"settings.json", seed.Settings()},
	}

	for _, doc := range documents {
		path := filepath.Join(cfg.DataDir, doc.file)
		if !*force {
			if _, err := os.Stat(path); err == nil {
				logger.Info("document exists, skipping", "file", path)
				continue
			}
		}

		store, err := storage.NewFile(path)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", path, err)
		}
		if err := store.Save(ctx, doc.content); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		logger.Info("document seeded", "file", path)
	}

	logger.Info("seed complete", "data_dir", cfg.DataDir)
}

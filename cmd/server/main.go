package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"atelier/internal/catalog"
	"atelier/internal/collection"
	"atelier/internal/config"
	"atelier/internal/handler"
	"atelier/internal/middleware"
	"atelier/internal/seed"
	"atelier/internal/service"
	"atelier/internal/storage"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"data_dir", cfg.DataDir,
	)

	// Uploads directory must exist before anything is stored in it
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	// Create document stores, one JSON file per collection
	portfolioStore, err := storage.NewFile(filepath.Join(cfg.DataDir, "portfolio.json"))
	if err != nil {
		log.Fatalf("Failed to open portfolio store: %v", err)
	}
	blogStore, err := storage.NewFile(filepath.Join(cfg.DataDir, "blog.json"))
	if err != nil {
		log.Fatalf("Failed to open blog store: %v", err)
	}
	testimonialStore, err := storage.NewFile(filepath.Join(cfg.DataDir, "testimonials.json"))
	if err != nil {
		log.Fatalf("Failed to open testimonials store: %v", err)
	}
	settingsStore, err := storage.NewFile(filepath.Join(cfg.DataDir, "settings.json"))
	if err != nil {
		log.Fatalf("Failed to open settings store: %v", err)
	}

	// Create collections over the stores
	portfolioItems := collection.New("portfolio", portfolioStore, seed.Portfolio(), logger)
	blogPosts := collection.New("blog", blogStore, seed.Blog(), logger)
	testimonials := collection.New("testimonials", testimonialStore, seed.Testimonials(), logger)
	siteSettings := collection.NewSingleton("settings", settingsStore, seed.Settings(), logger)

	// Load the category taxonomies
	categories, err := catalog.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load category registry: %v", err)
	}

	// Create services
	portfolioService := service.NewPortfolioService(portfolioItems, categories, logger)
	blogService := service.NewBlogService(blogPosts, categories, logger)
	testimonialService := service.NewTestimonialService(testimonials, logger)
	settingsService := service.NewSettingsService(siteSettings, logger)
	authService := service.NewAuthService(cfg.AdminPassword, logger)
	uploadService := service.NewUploadService(cfg.UploadsDir, "/uploads", logger)

	// Create handlers
	portfolioHandler := handler.NewPortfolioHandler(portfolioService, logger)
	blogHandler := handler.NewBlogHandler(blogService, logger)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService, logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)
	uploadHandler := handler.NewUploadHandler(uploadService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Portfolio routes
	mux.HandleFunc("GET /api/portfolio", portfolioHandler.List)
	mux.HandleFunc("POST /api/portfolio", portfolioHandler.Create)
	mux.HandleFunc("GET /api/portfolio/{id}", portfolioHandler.Get)
	mux.HandleFunc("PUT /api/portfolio/{id}", portfolioHandler.Update)
	mux.HandleFunc("DELETE /api/portfolio/{id}", portfolioHandler.Delete)

	// Blog routes
	mux.HandleFunc("GET /api/blog", blogHandler.List)
	mux.HandleFunc("POST /api/blog", blogHandler.Create)
	mux.HandleFunc("GET /api/blog/{id}", blogHandler.Get)
	mux.HandleFunc("PUT /api/blog/{id}", blogHandler.Update)
	mux.HandleFunc("DELETE /api/blog/{id}", blogHandler.Delete)

	// Testimonial routes
	mux.HandleFunc("GET /api/testimonials", testimonialHandler.List)
	mux.HandleFunc("POST /api/testimonials", testimonialHandler.Create)
	mux.HandleFunc("GET /api/testimonials/{id}", testimonialHandler.Get)
	mux.HandleFunc("PUT /api/testimonials/{id}", testimonialHandler.Update)
	mux.HandleFunc("DELETE /api/testimonials/{id}", testimonialHandler.Delete)

	// Settings routes
	mux.HandleFunc("GET /api/settings", settingsHandler.Get)
	mux.HandleFunc("PUT /api/settings", settingsHandler.Update)

	// Admin session gate (advisory only, see service.AuthService)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Image uploads and the stored files
	mux.HandleFunc("POST /api/upload", uploadHandler.Upload)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))

	// Build middleware chain; applied in reverse order (they wrap each other)
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestID(logger)(h)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

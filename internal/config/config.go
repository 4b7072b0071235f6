package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	Port        string
	Environment string
	DataDir     string
	UploadsDir  string
	CORSOrigins string
	// Shared admin password for the session gate. The gate is advisory
	// only: there is no server-side session and no token.
	AdminPassword string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	dataDir := getEnv("DATA_DIR", "data")

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   env,
		DataDir:       dataDir,
		UploadsDir:    getEnv("UPLOADS_DIR", filepath.Join("public", "uploads")),
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:3000"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		Debug:         getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

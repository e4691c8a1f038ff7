package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	ServerPort      string
	DatabaseType    string // sqlite (default), postgres or mysql
	DatabasePath    string // sqlite file
	DatabaseURL     string // postgres/mysql connection string
	MigrationsPath  string
	TemplatesPath   string
	StaticFilesPath string
	SessionSecret   string
	SessionDuration time.Duration
	TTSEnabled      bool
}

// Load reads configuration from the environment (and a local .env file
// if one exists) with sensible defaults for running out of the box.
func Load() *Config {
	// Missing .env is fine; the environment wins anyway.
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabaseType:    getEnv("DB_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./hanguldrill.db"),
		DatabaseURL:     getEnv("DB_URL", ""),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		TemplatesPath:   getEnv("TEMPLATES_PATH", "./internal/templates"),
		StaticFilesPath: getEnv("STATIC_PATH", "./static"),
		SessionSecret:   getEnv("SESSION_SECRET", "dev-only-insecure-secret"),
		SessionDuration: 30 * 24 * time.Hour,
		TTSEnabled:      getEnv("TTS_ENABLED", "true") != "false",
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

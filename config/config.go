package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, read once at startup. The storage
// backend is decided here and threaded into the database constructor, never
// re-inspected per query.
type Config struct {
	Port          string
	DatabaseURL   string // postgres DSN; empty means local sqlite
	SQLitePath    string
	CORSOrigins   []string
	MaxUploadSize int64 // bytes
}

const defaultMaxUploadSize = 16 << 20 // 16 MiB

// Load reads .env (if present) and environment variables into a Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", "lottery.db"),
		CORSOrigins:   []string{getEnv("CORS_ORIGINS", "*")},
		MaxUploadSize: defaultMaxUploadSize,
	}

	if cfg.DatabaseURL == "" {
		log.Println("[INFO] DATABASE_URL not set, using local sqlite database")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

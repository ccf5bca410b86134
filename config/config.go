package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every tunable the service reads from the environment.
// It is built once in main and injected; nothing reads os.Getenv after Load.
type Config struct {
	Port       string
	DBURL      string
	JWTSecret  string
	CORSOrigin string

	// Asset pipeline
	StorageBackend   string // "database" | "disk"
	UploadDir        string
	MaxUploadBytes   int64
	AllowedMimeTypes []string

	// Request layer defaults (consumed by internal/client users)
	CacheTTL       time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	return &Config{
		Port:       getEnv("PORT", "8080"),
		DBURL:      mustEnv("DB_URL"),
		JWTSecret:  mustEnv("JWT_SECRET"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),

		StorageBackend: getEnv("STORAGE_BACKEND", "database"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 50<<20),
		AllowedMimeTypes: getEnvList("ALLOWED_MIME_TYPES",
			"image/jpeg,image/png,image/gif,image/webp,image/svg+xml"),

		CacheTTL:       getEnvDuration("CACHE_TTL", 5*time.Minute),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		RetryBaseDelay: getEnvDuration("RETRY_BASE_DELAY", time.Second),
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		n, err := strconv.Atoi(value)
		if err != nil {
			log.Fatalf("Invalid integer for %s: %q", key, value)
		}
		return n
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			log.Fatalf("Invalid integer for %s: %q", key, value)
		}
		return n
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err != nil {
			log.Fatalf("Invalid duration for %s: %q", key, value)
		}
		return d
	}
	return fallback
}

func getEnvList(key string, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

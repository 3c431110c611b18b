package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment variables.
// Secrets are carried here explicitly so components can be constructed with
// distinct values per test case instead of reading globals.
type Config struct {
	ServerPort string

	JWTSecret  string
	HMACSecret string
	OwnerEmail string

	StoreDriver string // "file" or "sqlite"
	DataDir     string
	SQLitePath  string

	SecureDir     string
	ThumbnailsDir string

	RedisAddr string
	RedisDB   int
	RedisPass string

	CORSOrigins []string

	MediaURLTTL time.Duration
	CVURLTTL    time.Duration
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "5000"),

		JWTSecret:  getEnv("JWT_SECRET", "change-me"),
		HMACSecret: getEnv("HMAC_SECRET", "change-me-too"),
		OwnerEmail: getEnv("OWNER_EMAIL", "owner@example.com"),

		StoreDriver: getEnv("STORE_DRIVER", "file"),
		DataDir:     getEnv("DATA_DIR", "data"),
		SQLitePath:  getEnv("SQLITE_PATH", "data/portfolio.db"),

		SecureDir:     getEnv("SECURE_DIR", "storage/secure"),
		ThumbnailsDir: getEnv("THUMBNAILS_DIR", "public/thumbnails"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:3000"}),

		MediaURLTTL: getEnvMinutes("MEDIA_URL_TTL_MINUTES", 30),
		CVURLTTL:    getEnvMinutes("CV_URL_TTL_MINUTES", 60),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvMinutes(key string, def int) time.Duration {
	return time.Duration(getEnvInt(key, def)) * time.Minute
}

func getEnvList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}

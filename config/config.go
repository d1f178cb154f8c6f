package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds everything read from the environment. Missing required
// values are fatal at startup; nothing else checks env vars at runtime.
type Config struct {
	Port string

	MongoURI string
	MongoDB  string

	RedisAddr string // optional; empty disables the corpus cache

	GoogleProjectID string
	GoogleLocation  string
	GeminiModel     string

	AdminPassword  string // plain value or bcrypt hash
	AdminJWTSecret string
	AdminTokenTTL  time.Duration

	CorpusMaxEntries int
	CorpusCacheTTL   time.Duration
	GenerateTimeout  time.Duration
}

func Load() (*Config, error) {
	c := &Config{
		Port:             getenv("PORT", "8080"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getenv("MONGO_DB", "playbook"),
		RedisAddr:        firstenv("REDIS_ADDR", "REDIS_URI", "REDIS_URL"),
		GoogleProjectID:  os.Getenv("GOOGLE_PROJECT_ID"),
		GoogleLocation:   getenv("GOOGLE_LOCATION", "us-central1"),
		GeminiModel:      getenv("GEMINI_MODEL", "gemini-1.5-flash"),
		AdminPassword:    firstenv("ADMIN_PASSWORD_HASH", "ADMIN_PASSWORD"),
		AdminJWTSecret:   os.Getenv("ADMIN_JWT_SECRET"),
		AdminTokenTTL:    getdur("ADMIN_TOKEN_TTL", 2*time.Hour),
		CorpusMaxEntries: getint("CORPUS_MAX_ENTRIES", 50),
		CorpusCacheTTL:   getdur("CORPUS_CACHE_TTL", 30*time.Second),
		GenerateTimeout:  getdur("GENERATE_TIMEOUT", 60*time.Second),
	}

	if c.MongoURI == "" {
		return nil, errors.New("MONGO_URI environment variable is not set")
	}
	if c.GoogleProjectID == "" {
		return nil, errors.New("GOOGLE_PROJECT_ID environment variable is not set")
	}
	if c.AdminPassword == "" {
		return nil, errors.New("ADMIN_PASSWORD (or ADMIN_PASSWORD_HASH) environment variable is not set")
	}
	if c.AdminJWTSecret == "" {
		return nil, errors.New("ADMIN_JWT_SECRET environment variable is not set")
	}
	return c, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstenv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

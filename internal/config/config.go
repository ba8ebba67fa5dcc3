package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	ServerPort string

	// DatabaseURL empty means "run on the in-memory fixture" (dev and
	// tests only; nothing survives a restart).
	DatabaseURL string

	// Identity provider (session verification endpoint + API key).
	AuthAPIURL   string
	AuthSecret   string
	AuthCacheTTL time.Duration

	// Timeout applied to every outgoing HTTP call.
	RequestTimeout time.Duration
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		AuthAPIURL:     getEnv("AUTH_API_URL", "https://api.clerk.com/v1"),
		AuthSecret:     getEnv("AUTH_SECRET_KEY", ""),
		AuthCacheTTL:   getDuration("AUTH_CACHE_TTL", 60*time.Second),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration for %s (%q), using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

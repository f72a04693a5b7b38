package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingTokenSecret is returned when TOKEN_SECRET is not set. The server
// must not start without a signing key.
var ErrMissingTokenSecret = errors.New("TOKEN_SECRET not found in env")

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	TokenSecret  string
	TokenTTL     time.Duration
	AppEnv       string
}

// Load loads configuration from environment variables or sets defaults.
// A .env file is honored if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		return nil, ErrMissingTokenSecret
	}

	ttlStr := getEnv("TOKEN_TTL", "24h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./journal.db"),
		TokenSecret:  secret,
		TokenTTL:     ttl,
		AppEnv:       getEnv("APP_ENV", "development"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

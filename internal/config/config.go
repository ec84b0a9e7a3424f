package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the explicit, owned configuration object built once at startup
// and passed into the service. No package-level state.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	MongoURI      string
	MongoDatabase string

	RedisURL string

	// Shared secret used to sign and verify access tokens.
	JWTSecret string

	// Payment provider secret key.
	StripeSecretKey string
}

// LoadConfig reads configuration from the environment, loading a .env file
// first when one is present.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        parseLogLevel(os.Getenv("LOG_LEVEL")),
		MongoURI:        os.Getenv("MONGODB_URI"),
		MongoDatabase:   getEnv("DB_NAME", "LearnHub"),
		RedisURL:        os.Getenv("REDIS_URL"),
		JWTSecret:       os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required but not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required but not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

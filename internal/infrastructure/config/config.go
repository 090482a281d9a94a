package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration values.
type Config struct {
	Port        string
	MongoURI    string
	MongoDBName string
	RedisURL    string
	JWTSecret   string
	RateLimit   float64
}

// NewConfig creates a new Config instance, loading values from environment
// variables. MongoURI and JWTSecret have no sane defaults and must be set.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		MongoURI:    getEnv("MONGODB_URI", ""),
		MongoDBName: getEnv("MONGODB_DB_NAME", "kindcart"),
		RedisURL:    getEnv("REDIS_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		RateLimit:   float64(getEnvAsInt("RATE_LIMIT_PER_SECOND", 10)),
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI environment variable not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}
	return cfg, nil
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

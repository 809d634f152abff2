package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string
}

// Load reads the .env file if present and resolves the configuration.
// A missing DATABASE_URL is not an error: the server starts without a
// store connection and reports it through the diagnostic endpoint.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getEnv("DATABASE_NAME", "food_ordering"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

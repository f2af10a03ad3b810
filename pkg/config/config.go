package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	PostgresURL   string
	MongoURI      string
	MongoDatabase string
	SessionTTL    time.Duration
	ImageDir      string
	BaseURL       string
	SummaryAPIURL string
}

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		Env:           getEnv("ENV", "development"),
		PostgresURL:   getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDatabase: getEnv("MONGO_DATABASE", "community"),
		SessionTTL:    getDurationEnv("SESSION_TTL", 24*time.Hour),
		ImageDir:      getEnv("IMAGE_DIR", "./image"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8000"),
		SummaryAPIURL: getEnv("SUMMARY_API_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

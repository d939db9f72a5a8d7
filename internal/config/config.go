package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration for the application.
type Config struct {
	GeminiAPIKey string

	// Models
	TextModel  string
	ImageModel string

	// Persistence
	DBPath string

	// Profile used when nobody is logged in.
	DefaultUserID string

	// Connectivity probe target (host:port).
	ProbeAddress string

	// Cosmetic tickers
	LoadingMessageInterval time.Duration
	ProgressTickInterval   time.Duration
}

// NewFromEnv creates a new Config object from environment variables. A .env
// file is loaded first if present.
func NewFromEnv() (*Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	return &Config{
		GeminiAPIKey:           geminiAPIKey,
		TextModel:              getEnv("SPOTFINDER_TEXT_MODEL", "gemini-2.5-flash"),
		ImageModel:             getEnv("SPOTFINDER_IMAGE_MODEL", "gemini-2.5-flash-image"),
		DBPath:                 getEnv("SPOTFINDER_DB_PATH", "data/spotfinder.db"),
		DefaultUserID:          getEnv("SPOTFINDER_DEFAULT_USER", "default"),
		ProbeAddress:           getEnv("SPOTFINDER_PROBE_ADDRESS", "generativelanguage.googleapis.com:443"),
		LoadingMessageInterval: parseDuration(getEnv("SPOTFINDER_LOADING_INTERVAL", "2.5s"), 2500*time.Millisecond),
		ProgressTickInterval:   parseDuration(getEnv("SPOTFINDER_PROGRESS_INTERVAL", "400ms"), 400*time.Millisecond),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

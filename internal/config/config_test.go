package config

import (
	"os"
	"testing"
	"time"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "gemini_key")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.GeminiAPIKey != "gemini_key" {
			t.Errorf("Expected GeminiAPIKey to be 'gemini_key', got '%s'", cfg.GeminiAPIKey)
		}
		if cfg.TextModel != "gemini-2.5-flash" {
			t.Errorf("Expected default text model, got '%s'", cfg.TextModel)
		}
		if cfg.DBPath != "data/spotfinder.db" {
			t.Errorf("Expected default db path, got '%s'", cfg.DBPath)
		}
		if cfg.LoadingMessageInterval != 2500*time.Millisecond {
			t.Errorf("Expected default loading interval, got %v", cfg.LoadingMessageInterval)
		}
	})

	t.Run("MissingGeminiAPIKey", func(t *testing.T) {
		os.Unsetenv("GEMINI_API_KEY")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing GEMINI_API_KEY, got nil")
		}
		expectedError := "GEMINI_API_KEY environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "gemini_key")
		t.Setenv("SPOTFINDER_TEXT_MODEL", "gemini-3.0-pro")
		t.Setenv("SPOTFINDER_LOADING_INTERVAL", "1s")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.TextModel != "gemini-3.0-pro" {
			t.Errorf("Expected overridden text model, got '%s'", cfg.TextModel)
		}
		if cfg.LoadingMessageInterval != time.Second {
			t.Errorf("Expected overridden loading interval, got %v", cfg.LoadingMessageInterval)
		}
	})

	t.Run("InvalidDurationFallsBack", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "gemini_key")
		t.Setenv("SPOTFINDER_PROGRESS_INTERVAL", "not-a-duration")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.ProgressTickInterval != 400*time.Millisecond {
			t.Errorf("Expected fallback progress interval, got %v", cfg.ProgressTickInterval)
		}
	})
}

package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"spotfinder-ai/internal/database"
	"spotfinder-ai/internal/shared"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "metrics_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	db, err := database.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewStore(db.SQL)
}

func TestStore(t *testing.T) {
	store := newTestStore(t)

	t.Run("RecordAndAggregate", func(t *testing.T) {
		err := store.Record(ExecutionMetric{
			CallName:         "FindPhotoSpots",
			Model:            "gemini-2.5-flash",
			PromptTokens:     420,
			CompletionTokens: 1337,
			LatencyMS:        2100,
		})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		usage, err := store.GetDailyUsage(1)
		if err != nil {
			t.Fatalf("GetDailyUsage failed: %v", err)
		}
		if len(usage) != 1 {
			t.Fatalf("Expected 1 day of usage, got %d", len(usage))
		}
		if usage[0].TotalPrompt != 420 || usage[0].TotalCompletion != 1337 || usage[0].TotalCalls != 1 {
			t.Errorf("Unexpected aggregate %+v", usage[0])
		}
	})

	t.Run("RecordMetaSkipsEmptyUsage", func(t *testing.T) {
		err := store.RecordMeta(shared.RequestMeta{Call: "ReverseGeocode"})
		if err != nil {
			t.Fatalf("RecordMeta failed: %v", err)
		}
		usage, err := store.GetDailyUsage(1)
		if err != nil {
			t.Fatalf("GetDailyUsage failed: %v", err)
		}
		if usage[0].TotalCalls != 1 {
			t.Errorf("Expected empty meta to be skipped, got %d calls", usage[0].TotalCalls)
		}
	})

	t.Run("Cleanup", func(t *testing.T) {
		err := store.Record(ExecutionMetric{
			CallName:     "GeneratePhotoshootPlan",
			Model:        "gemini-2.5-flash",
			PromptTokens: 10,
			Timestamp:    time.Now().UTC().AddDate(0, 0, -60),
		})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		affected, err := store.Cleanup(30)
		if err != nil {
			t.Fatalf("Cleanup failed: %v", err)
		}
		if affected != 1 {
			t.Errorf("Expected 1 old record removed, got %d", affected)
		}
	})
}

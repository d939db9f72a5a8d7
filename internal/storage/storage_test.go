package storage

import (
	"os"
	"path/filepath"
	"testing"

	"spotfinder-ai/internal/database"
)

func TestSQLiteKV(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "storage_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	db, err := database.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	kv := NewSQLiteKV(db.SQL)

	t.Run("MissingKey", func(t *testing.T) {
		_, ok, err := kv.Get("spotfinder_userdata_nobody")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok {
			t.Error("Expected missing key, got a value")
		}
	})

	t.Run("SetAndGet", func(t *testing.T) {
		if err := kv.Set("spotfinder_user", `{"id":"anna","username":"Anna"}`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		v, ok, err := kv.Get("spotfinder_user")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !ok || v != `{"id":"anna","username":"Anna"}` {
			t.Errorf("Unexpected value %q (ok=%v)", v, ok)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		if err := kv.Set("spotfinder_user", `{"id":"ben","username":"Ben"}`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		v, _, err := kv.Get("spotfinder_user")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if v != `{"id":"ben","username":"Ben"}` {
			t.Errorf("Expected overwritten value, got %q", v)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := kv.Delete("spotfinder_user"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		_, ok, err := kv.Get("spotfinder_user")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok {
			t.Error("Expected key to be gone after delete")
		}
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		if err := kv.Delete("never-existed"); err != nil {
			t.Errorf("Deleting a missing key should be a no-op, got %v", err)
		}
	})
}

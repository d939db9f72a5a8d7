package profile

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"spotfinder-ai/internal/shared"
	"spotfinder-ai/internal/spot"
)

type memoryKV struct {
	entries map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{entries: make(map[string]string)}
}

func (m *memoryKV) Get(key string) (string, bool, error) {
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *memoryKV) Set(key, value string) error {
	m.entries[key] = value
	return nil
}

func (m *memoryKV) Delete(key string) error {
	delete(m.entries, key)
	return nil
}

type fakeGeocoder struct {
	location *spot.GeocodedLocation
	err      error
	calls    int
}

func (f *fakeGeocoder) GeocodeLocation(ctx context.Context, address string) (*spot.GeocodedLocation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.location, nil
}

func testSpot(id string) spot.PhotoSpot {
	return spot.PhotoSpot{
		ID:               id,
		Name:             "Olympiapark",
		Address:          "München",
		Description:      "Weite Parklandschaft mit Seeblick.",
		Coordinates:      shared.Coordinates{Lat: 48.17, Lon: 11.55},
		MatchingCriteria: []string{"landschaft"},
	}
}

func TestLoginAndSession(t *testing.T) {
	kv := newMemoryKV()
	s := NewStore(kv, nil, nil)

	user, err := s.Login("Alice")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != "alice" || user.Username != "Alice" {
		t.Errorf("Unexpected user %+v", user)
	}

	// A new store over the same KV restores the session.
	s2 := NewStore(kv, nil, nil)
	restored := s2.CurrentUser()
	if restored == nil || restored.ID != "alice" {
		t.Fatalf("Expected restored session for alice, got %+v", restored)
	}

	if err := s2.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if s2.CurrentUser() != nil {
		t.Error("Expected no user after logout")
	}

	s3 := NewStore(kv, nil, nil)
	if s3.CurrentUser() != nil {
		t.Error("Expected logout to be persisted")
	}
}

func TestToggles(t *testing.T) {
	kv := newMemoryKV()
	s := NewStore(kv, nil, nil)
	if _, err := s.Login("alice"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	t.Run("FavoriteRoundTrip", func(t *testing.T) {
		data, err := s.ToggleFavorite(testSpot("spot-1"))
		if err != nil {
			t.Fatalf("ToggleFavorite failed: %v", err)
		}
		if len(data.Favorites) != 1 {
			t.Fatalf("Expected 1 favorite, got %d", len(data.Favorites))
		}

		data, err = s.ToggleFavorite(testSpot("spot-1"))
		if err != nil {
			t.Fatalf("ToggleFavorite failed: %v", err)
		}
		if len(data.Favorites) != 0 {
			t.Errorf("Expected favorite removed, got %d", len(data.Favorites))
		}
	})

	t.Run("NoDuplicateIDs", func(t *testing.T) {
		if _, err := s.ToggleVisited(testSpot("spot-2")); err != nil {
			t.Fatalf("ToggleVisited failed: %v", err)
		}
		if _, err := s.ToggleVisited(testSpot("spot-2")); err != nil {
			t.Fatalf("ToggleVisited failed: %v", err)
		}
		data, err := s.ToggleVisited(testSpot("spot-2"))
		if err != nil {
			t.Fatalf("ToggleVisited failed: %v", err)
		}
		if len(data.Visited) != 1 {
			t.Errorf("Expected exactly one visited entry, got %d", len(data.Visited))
		}
	})

	t.Run("MutationsPersist", func(t *testing.T) {
		s2 := NewStore(kv, nil, nil)
		data := s2.Data()
		if len(data.Visited) != 1 || data.Visited[0].ID != "spot-2" {
			t.Errorf("Expected visited spot-2 to survive a reload, got %+v", data.Visited)
		}
	})

	t.Run("RequiresLogin", func(t *testing.T) {
		s3 := NewStore(newMemoryKV(), nil, nil)
		if _, err := s3.ToggleFavorite(testSpot("spot-1")); !errors.Is(err, ErrNotLoggedIn) {
			t.Errorf("Expected ErrNotLoggedIn, got %v", err)
		}
	})
}

func TestPlans(t *testing.T) {
	s := NewStore(newMemoryKV(), nil, nil)
	if _, err := s.Login("alice"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	plan := spot.PhotoshootPlan{ID: "nebelmorgen-am-see-1700000000000", Title: "Nebelmorgen am See"}

	t.Run("SaveIsIdempotent", func(t *testing.T) {
		if err := s.SavePlan(plan); err != nil {
			t.Fatalf("SavePlan failed: %v", err)
		}
		if err := s.SavePlan(plan); err != nil {
			t.Fatalf("SavePlan failed: %v", err)
		}
		if got := len(s.Data().SavedPlans); got != 1 {
			t.Errorf("Expected 1 saved plan, got %d", got)
		}
	})

	t.Run("DeleteUnknownIsNoOp", func(t *testing.T) {
		if err := s.DeletePlan("does-not-exist"); err != nil {
			t.Fatalf("DeletePlan failed: %v", err)
		}
		if got := len(s.Data().SavedPlans); got != 1 {
			t.Errorf("Expected plan untouched, got %d", got)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := s.DeletePlan(plan.ID); err != nil {
			t.Fatalf("DeletePlan failed: %v", err)
		}
		if got := len(s.Data().SavedPlans); got != 0 {
			t.Errorf("Expected plan removed, got %d", got)
		}
	})
}

func TestLoadRecovery(t *testing.T) {
	t.Run("CorruptRecordYieldsDefaults", func(t *testing.T) {
		kv := newMemoryKV()
		kv.Set("spotfinder_userdata_alice", "{not json")

		s := NewStore(kv, nil, nil)
		if _, err := s.Login("alice"); err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		data := s.Data()
		if len(data.Favorites) != 0 || len(data.Visited) != 0 || len(data.SavedPlans) != 0 {
			t.Errorf("Expected default-shaped data, got %+v", data)
		}
	})

	t.Run("LegacyVisitedIDsAreDiscarded", func(t *testing.T) {
		kv := newMemoryKV()
		legacy := map[string]any{
			"favorites":  []any{testSpot("spot-1")},
			"visited":    []any{"spot-1", testSpot("spot-2")},
			"savedPlans": []any{},
		}
		raw, _ := json.Marshal(legacy)
		kv.Set("spotfinder_userdata_alice", string(raw))

		s := NewStore(kv, nil, nil)
		if _, err := s.Login("alice"); err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		data := s.Data()
		if len(data.Favorites) != 1 {
			t.Errorf("Expected favorites to survive, got %d", len(data.Favorites))
		}
		if len(data.Visited) != 1 || data.Visited[0].ID != "spot-2" {
			t.Errorf("Expected only the full visited object to survive, got %+v", data.Visited)
		}

		// Migration is persisted: a reload must not see the legacy entry.
		var stored struct {
			Visited []json.RawMessage `json:"visited"`
		}
		if err := json.Unmarshal([]byte(kv.entries["spotfinder_userdata_alice"]), &stored); err != nil {
			t.Fatalf("Stored record is not valid JSON: %v", err)
		}
		if len(stored.Visited) != 1 {
			t.Errorf("Expected migrated record with 1 visited entry, got %d", len(stored.Visited))
		}
	})

	t.Run("MissingRecordYieldsDefaults", func(t *testing.T) {
		s := NewStore(newMemoryKV(), nil, nil)
		if _, err := s.Login("bob"); err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		data := s.Data()
		if data.Favorites == nil || data.Visited == nil || data.SavedPlans == nil {
			t.Error("Expected non-nil default slices")
		}
	})
}

func TestAddVisitedSpot(t *testing.T) {
	t.Run("GeocodesAndPersists", func(t *testing.T) {
		geocoder := &fakeGeocoder{location: &spot.GeocodedLocation{
			Coordinates: shared.Coordinates{Lat: 48.17, Lon: 11.55},
			Name:        "München",
		}}
		s := NewStore(newMemoryKV(), geocoder, func() bool { return true })
		s.now = func() time.Time { return time.UnixMilli(1700000000000) }
		if _, err := s.Login("alice"); err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		sp, err := s.AddVisitedSpot(context.Background(), "Olympiapark München", "Spiridon-Louis-Ring 21", "Park mit Seeblick")
		if err != nil {
			t.Fatalf("AddVisitedSpot failed: %v", err)
		}
		if sp.ID != "olympiapark-münchen-1700000000000" {
			t.Errorf("Unexpected id %q", sp.ID)
		}
		if sp.Coordinates.Lat != 48.17 || sp.Coordinates.Lon != 11.55 {
			t.Errorf("Expected geocoded coordinates, got %+v", sp.Coordinates)
		}
		if got := len(s.Data().Visited); got != 1 {
			t.Errorf("Expected 1 visited entry, got %d", got)
		}
	})

	t.Run("OfflineIsRejectedBeforeGeocoding", func(t *testing.T) {
		geocoder := &fakeGeocoder{}
		s := NewStore(newMemoryKV(), geocoder, func() bool { return false })
		if _, err := s.Login("alice"); err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		_, err := s.AddVisitedSpot(context.Background(), "Olympiapark", "München", "")
		if !errors.Is(err, ErrOffline) {
			t.Fatalf("Expected ErrOffline, got %v", err)
		}
		if geocoder.calls != 0 {
			t.Errorf("Expected no geocode call while offline, got %d", geocoder.calls)
		}
	})
}

package profile

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"spotfinder-ai/internal/spot"
	"spotfinder-ai/internal/storage"

	"github.com/rs/zerolog/log"
)

const (
	userKey        = "spotfinder_user"
	userDataPrefix = "spotfinder_userdata_"
)

// ErrOffline is returned by operations that need the network while the app
// is offline. The message is shown to the user as-is.
var ErrOffline = errors.New("Du bist offline. Diese Funktion ist ohne Internetverbindung nicht verfügbar.")

// ErrNotLoggedIn is returned by profile mutations when no user is logged in.
var ErrNotLoggedIn = errors.New("Bitte melde dich an, um diese Funktion zu nutzen.")

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	GeocodeLocation(ctx context.Context, address string) (*spot.GeocodedLocation, error)
}

// Store keeps the logged-in user and their favorites, visited spots and saved
// plans, backed by the key-value store. Every mutation persists the whole
// record synchronously.
type Store struct {
	mu       sync.Mutex
	kv       storage.KV
	geocoder Geocoder
	online   func() bool
	now      func() time.Time

	restored bool
	current  *spot.User
	data     spot.UserData
}

// NewStore creates a profile store. online may be nil, in which case the
// store assumes connectivity.
func NewStore(kv storage.KV, geocoder Geocoder, online func() bool) *Store {
	return &Store{
		kv:       kv,
		geocoder: geocoder,
		online:   online,
		now:      time.Now,
		data:     spot.DefaultUserData(),
	}
}

// Login identifies the user by name and loads their data. The user id is the
// lowercased username.
func (s *Store) Login(username string) (spot.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return spot.User{}, errors.New("Bitte gib einen Benutzernamen ein.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := spot.User{ID: strings.ToLower(username), Username: username}
	raw, err := json.Marshal(user)
	if err != nil {
		return spot.User{}, err
	}
	if err := s.kv.Set(userKey, string(raw)); err != nil {
		return spot.User{}, err
	}

	s.restored = true
	s.current = &user
	s.data = s.loadLocked(user.ID)
	return user, nil
}

// CurrentUser returns the logged-in user, restoring a previous session from
// the store if needed. Returns nil when nobody is logged in.
func (s *Store) CurrentUser() *spot.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// Logout forgets the current user and their in-memory data.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(userKey); err != nil {
		return err
	}
	s.restored = true
	s.current = nil
	s.data = spot.DefaultUserData()
	return nil
}

// Data returns a copy of the current user's record.
func (s *Store) Data() spot.UserData {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked()
	return copyData(s.data)
}

// ToggleFavorite adds the spot to the favorites, or removes it if it is
// already there.
func (s *Store) ToggleFavorite(sp spot.PhotoSpot) (spot.UserData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked()
	if s.current == nil {
		return spot.UserData{}, ErrNotLoggedIn
	}
	s.data.Favorites = toggleSpot(s.data.Favorites, sp)
	if err := s.saveLocked(); err != nil {
		return spot.UserData{}, err
	}
	return copyData(s.data), nil
}

// ToggleVisited marks the spot as visited, or unmarks it if it already is.
func (s *Store) ToggleVisited(sp spot.PhotoSpot) (spot.UserData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked()
	if s.current == nil {
		return spot.UserData{}, ErrNotLoggedIn
	}
	s.data.Visited = toggleSpot(s.data.Visited, sp)
	if err := s.saveLocked(); err != nil {
		return spot.UserData{}, err
	}
	return copyData(s.data), nil
}

// SavePlan stores a generated plan in the profile. Saving the same plan
// twice is a no-op.
func (s *Store) SavePlan(plan spot.PhotoshootPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked()
	if s.current == nil {
		return ErrNotLoggedIn
	}
	for _, p := range s.data.SavedPlans {
		if p.ID == plan.ID {
			return nil
		}
	}
	s.data.SavedPlans = append(s.data.SavedPlans, plan)
	return s.saveLocked()
}

// DeletePlan removes a saved plan. Deleting an unknown id is a no-op.
func (s *Store) DeletePlan(planID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked()
	if s.current == nil {
		return ErrNotLoggedIn
	}
	plans := s.data.SavedPlans[:0]
	for _, p := range s.data.SavedPlans {
		if p.ID != planID {
			plans = append(plans, p)
		}
	}
	s.data.SavedPlans = plans
	return s.saveLocked()
}

// AddVisitedSpot records a spot the user visited outside the app. The
// address is geocoded, so this requires connectivity.
func (s *Store) AddVisitedSpot(ctx context.Context, name, address, description string) (spot.PhotoSpot, error) {
	if s.online != nil && !s.online() {
		return spot.PhotoSpot{}, ErrOffline
	}

	loc, err := s.geocoder.GeocodeLocation(ctx, address)
	if err != nil {
		return spot.PhotoSpot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked()
	if s.current == nil {
		return spot.PhotoSpot{}, ErrNotLoggedIn
	}

	sp := spot.PhotoSpot{
		ID:               spot.NewID(name, s.now()),
		Name:             name,
		Address:          address,
		Description:      description,
		Coordinates:      loc.Coordinates,
		MatchingCriteria: []string{"Manuell hinzugefügt"},
	}
	s.data.Visited = append(s.data.Visited, sp)
	if err := s.saveLocked(); err != nil {
		return spot.PhotoSpot{}, err
	}
	return sp, nil
}

// restoreLocked recovers a previous session from the store, once.
func (s *Store) restoreLocked() {
	if s.restored {
		return
	}
	s.restored = true

	raw, ok, err := s.kv.Get(userKey)
	if err != nil {
		log.Warn().Err(err).Msg("failed to restore user session")
		return
	}
	if !ok {
		return
	}
	var user spot.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" {
		log.Warn().Err(err).Msg("discarding corrupt user record")
		return
	}
	s.current = &user
	s.data = s.loadLocked(user.ID)
}

// loadLocked reads and decodes the user's record. A missing or corrupt
// record yields a default-shaped one; the caller never sees an error.
func (s *Store) loadLocked(userID string) spot.UserData {
	data := spot.DefaultUserData()

	raw, ok, err := s.kv.Get(userDataPrefix + userID)
	if err != nil {
		log.Warn().Err(err).Str("user", userID).Msg("failed to read user data")
		return data
	}
	if !ok {
		return data
	}

	// Visited entries were plain spot ids in early records; they carry too
	// little to rebuild a full spot, so they are dropped on load.
	var stored struct {
		Favorites  []spot.PhotoSpot      `json:"favorites"`
		Visited    []json.RawMessage     `json:"visited"`
		SavedPlans []spot.PhotoshootPlan `json:"savedPlans"`
	}
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		log.Warn().Err(err).Str("user", userID).Msg("discarding corrupt user data")
		return data
	}

	if stored.Favorites != nil {
		data.Favorites = stored.Favorites
	}
	if stored.SavedPlans != nil {
		data.SavedPlans = stored.SavedPlans
	}

	discarded := 0
	for _, entry := range stored.Visited {
		var sp spot.PhotoSpot
		if err := json.Unmarshal(entry, &sp); err != nil || sp.ID == "" {
			discarded++
			continue
		}
		data.Visited = append(data.Visited, sp)
	}
	if discarded > 0 {
		log.Warn().Int("count", discarded).Str("user", userID).Msg("discarded legacy visited entries")
		// Write the cleaned record back so the migration happens once.
		if cleaned, err := json.Marshal(data); err == nil {
			if err := s.kv.Set(userDataPrefix+userID, string(cleaned)); err != nil {
				log.Warn().Err(err).Str("user", userID).Msg("failed to persist migrated user data")
			}
		}
	}
	return data
}

// saveLocked serializes the whole record and writes it back.
func (s *Store) saveLocked() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	return s.kv.Set(userDataPrefix+s.current.ID, string(raw))
}

func toggleSpot(spots []spot.PhotoSpot, sp spot.PhotoSpot) []spot.PhotoSpot {
	for i, existing := range spots {
		if existing.ID == sp.ID {
			return append(spots[:i], spots[i+1:]...)
		}
	}
	return append(spots, sp)
}

func copyData(data spot.UserData) spot.UserData {
	out := spot.DefaultUserData()
	out.Favorites = append(out.Favorites, data.Favorites...)
	out.Visited = append(out.Visited, data.Visited...)
	out.SavedPlans = append(out.SavedPlans, data.SavedPlans...)
	return out
}

package gateway

import (
	"encoding/json"
	"fmt"

	"spotfinder-ai/internal/spot"
)

// Parsing fails closed: a payload missing a required field is rejected as a
// whole, exactly like a transport failure.

func parseSpots(data []byte) ([]spot.PhotoSpot, error) {
	var payload struct {
		Spots []spot.PhotoSpot `json:"spots"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse spot list json: %w", err)
	}
	for i := range payload.Spots {
		if err := payload.Spots[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid spot payload: %w", err)
		}
	}
	return payload.Spots, nil
}

func parsePlan(data []byte) (*spot.PhotoshootPlan, error) {
	var plan spot.PhotoshootPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan json: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan payload: %w", err)
	}
	return &plan, nil
}

func parseSuggestions(data []byte) ([]spot.TimeSlotSuggestion, error) {
	var payload struct {
		Suggestions []spot.TimeSlotSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions json: %w", err)
	}
	for i := range payload.Suggestions {
		if err := payload.Suggestions[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid suggestion payload: %w", err)
		}
	}
	return payload.Suggestions, nil
}

func parseGeocode(data []byte) (*spot.GeocodedLocation, error) {
	var loc spot.GeocodedLocation
	if err := json.Unmarshal(data, &loc); err != nil {
		return nil, fmt.Errorf("failed to parse geocode json: %w", err)
	}
	if err := loc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid geocode payload: %w", err)
	}
	return &loc, nil
}

func parseIdeas(data []byte) ([]spot.GeneratedIdea, error) {
	var payload struct {
		Ideas []spot.GeneratedIdea `json:"ideas"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse ideas json: %w", err)
	}
	for _, idea := range payload.Ideas {
		if idea.Title == "" || idea.Description == "" {
			return nil, fmt.Errorf("invalid idea payload: missing title or description")
		}
	}
	return payload.Ideas, nil
}

func parseAnalysis(data []byte) (*spot.ImageAnalysis, error) {
	var analysis spot.ImageAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis json: %w", err)
	}
	if len(analysis.PhotographicElements) == 0 || len(analysis.ColorPalette) == 0 {
		return nil, fmt.Errorf("invalid analysis payload: empty elements or palette")
	}
	return &analysis, nil
}

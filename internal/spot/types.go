package spot

import (
	"spotfinder-ai/internal/shared"
)

// MediaType selects between photo and video oriented recommendations.
type MediaType string

const (
	MediaPhoto MediaType = "photo"
	MediaVideo MediaType = "video"
)

// SearchCriteria is the quick-search wizard input.
type SearchCriteria struct {
	MediaType MediaType `json:"mediaType"`
	Motivs    []string  `json:"motivs"`
	Radius    int       `json:"radius"`
	Styles    []string  `json:"styles"`
	TimeOfDay string    `json:"timeOfDay"`
}

// DefaultSearchCriteria returns the criteria the quick-search wizard starts
// with and resets to.
func DefaultSearchCriteria() SearchCriteria {
	return SearchCriteria{
		MediaType: MediaPhoto,
		Motivs:    []string{},
		Radius:    20,
		Styles:    []string{},
		TimeOfDay: "Nachmittag",
	}
}

// PlannerCriteria is the shooting-planner wizard input. It stays partial
// until the wizard has collected all required fields.
type PlannerCriteria struct {
	Subject        string              `json:"subject"`
	Motivs         []string            `json:"motivs"`
	Styles         []string            `json:"styles"`
	KeyElements    string              `json:"keyElements"`
	DesiredWeather []string            `json:"desiredWeather"`
	DesiredLight   []string            `json:"desiredLight"`
	DateRange      *DateRange          `json:"dateRange,omitempty"`
	UserLocation   *shared.Coordinates `json:"userLocation,omitempty"`
	Radius         int                 `json:"radius"`
}

// DateRange is the available shooting window, ISO 8601 date strings.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DefaultPlannerCriteria returns the criteria the planner wizard starts with
// and resets to.
func DefaultPlannerCriteria() PlannerCriteria {
	return PlannerCriteria{
		Subject:        "",
		Motivs:         []string{},
		Styles:         []string{},
		KeyElements:    "",
		DesiredWeather: []string{},
		DesiredLight:   []string{},
		Radius:         25,
	}
}

// WeatherData is a forecast attached to a spot or plan.
type WeatherData struct {
	Condition           string  `json:"condition"`
	Temperature         float64 `json:"temperature"`
	PrecipitationChance float64 `json:"precipitationChance"`
	WindSpeed           float64 `json:"windSpeed"`
	Notes               string  `json:"notes,omitempty"`
}

// PhotoSpot is one recommended location. Immutable once received from the
// gateway; Distance is annotated client-side.
type PhotoSpot struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Address          string             `json:"address"`
	Description      string             `json:"description"`
	Coordinates      shared.Coordinates `json:"coordinates"`
	Distance         float64            `json:"distance,omitempty"`
	MatchingCriteria []string           `json:"matchingCriteria"`
	Weather          *WeatherData       `json:"weather,omitempty"`
	KeyAspects       []string           `json:"keyAspects,omitempty"`
	BestTimeToVisit  string             `json:"bestTimeToVisit,omitempty"`
	PhotoTips        []string           `json:"photoTips,omitempty"`
	ProTip           string             `json:"proTip,omitempty"`
}

// PlanSpot is the location section of a photoshoot plan.
type PlanSpot struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Coordinates shared.Coordinates `json:"coordinates"`
}

// TravelPlan describes how and when to get to the spot.
type TravelPlan struct {
	DepartureTime string `json:"departureTime"`
	Notes         string `json:"notes"`
}

// LightingAnalysis describes the expected light at the chosen moment.
type LightingAnalysis struct {
	Condition      string `json:"condition"`
	LightPollution string `json:"lightPollution"`
}

// PhotoshootPlan is a full shoot itinerary. The ID is assigned client-side
// after generation.
type PhotoshootPlan struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	DateTime         string           `json:"dateTime"`
	Spot             PlanSpot         `json:"spot"`
	TravelPlan       TravelPlan       `json:"travelPlan"`
	WeatherForecast  WeatherData      `json:"weatherForecast"`
	LightingAnalysis LightingAnalysis `json:"lightingAnalysis"`
	EquipmentList    []string         `json:"equipmentList"`
	NotesAndTips     []string         `json:"notesAndTips"`
	CreativeVision   string           `json:"creativeVision"`
	ShotList         []string         `json:"shotList"`
	MoodImagePrompts []string         `json:"moodImagePrompts"`
}

// TimeSlotSuggestion is one proposed shooting window from the planner.
type TimeSlotSuggestion struct {
	DateTime string `json:"dateTime"`
	Reason   string `json:"reason"`
}

// GeocodedLocation is a resolved address.
type GeocodedLocation struct {
	shared.Coordinates
	Name string `json:"name"`
}

// GeneratedIdea is a creative shoot concept suggested from motifs.
type GeneratedIdea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Styles      []string `json:"styles"`
	KeyElements string   `json:"keyElements"`
}

// ImageAnalysis describes the photographic content of an uploaded image.
type ImageAnalysis struct {
	PhotographicElements []string `json:"photographicElements"`
	ColorPalette         []string `json:"colorPalette"`
}

// UserData is the per-profile persisted record.
type UserData struct {
	Favorites  []PhotoSpot      `json:"favorites"`
	Visited    []PhotoSpot      `json:"visited"`
	SavedPlans []PhotoshootPlan `json:"savedPlans"`
}

// DefaultUserData returns an empty, default-shaped record.
func DefaultUserData() UserData {
	return UserData{
		Favorites:  []PhotoSpot{},
		Visited:    []PhotoSpot{},
		SavedPlans: []PhotoshootPlan{},
	}
}

// User is a locally identified profile.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

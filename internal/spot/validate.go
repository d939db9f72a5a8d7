package spot

import (
	"fmt"
)

// Validate checks that a spot received from the AI carries every required
// field. A spot failing this check is treated as a failed request, never
// trusted partially.
func (s *PhotoSpot) Validate() error {
	switch {
	case s.ID == "":
		return fmt.Errorf("spot is missing an id")
	case s.Name == "":
		return fmt.Errorf("spot %q is missing a name", s.ID)
	case s.Address == "":
		return fmt.Errorf("spot %q is missing an address", s.ID)
	case s.Description == "":
		return fmt.Errorf("spot %q is missing a description", s.ID)
	case s.Coordinates.Lat == 0 && s.Coordinates.Lon == 0:
		return fmt.Errorf("spot %q has unresolved coordinates", s.ID)
	case len(s.MatchingCriteria) == 0:
		return fmt.Errorf("spot %q has no matching criteria", s.ID)
	}
	return nil
}

// Validate checks that a generated plan carries every required field.
func (p *PhotoshootPlan) Validate() error {
	switch {
	case p.Title == "":
		return fmt.Errorf("plan is missing a title")
	case p.DateTime == "":
		return fmt.Errorf("plan %q is missing a date", p.Title)
	case p.Spot.Name == "":
		return fmt.Errorf("plan %q is missing a spot", p.Title)
	case p.Spot.Coordinates.Lat == 0 && p.Spot.Coordinates.Lon == 0:
		return fmt.Errorf("plan %q has unresolved spot coordinates", p.Title)
	case len(p.EquipmentList) == 0:
		return fmt.Errorf("plan %q has no equipment list", p.Title)
	case p.CreativeVision == "":
		return fmt.Errorf("plan %q is missing the creative vision", p.Title)
	case len(p.ShotList) == 0:
		return fmt.Errorf("plan %q has no shot list", p.Title)
	case len(p.MoodImagePrompts) == 0:
		return fmt.Errorf("plan %q has no mood image prompts", p.Title)
	}
	return nil
}

// Validate checks a geocoding result.
func (g *GeocodedLocation) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("geocoded location is missing a name")
	}
	if g.Lat == 0 && g.Lon == 0 {
		return fmt.Errorf("geocoded location %q has no coordinates", g.Name)
	}
	return nil
}

// Validate checks a suggested time slot.
func (t *TimeSlotSuggestion) Validate() error {
	if t.DateTime == "" {
		return fmt.Errorf("suggestion is missing a date")
	}
	if t.Reason == "" {
		return fmt.Errorf("suggestion %q is missing a reason", t.DateTime)
	}
	return nil
}

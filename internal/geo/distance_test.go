package geo

import (
	"math"
	"testing"

	"spotfinder-ai/internal/shared"
)

func TestDistance(t *testing.T) {
	t.Run("BerlinToParis", func(t *testing.T) {
		berlin := shared.Coordinates{Lat: 52.5200, Lon: 13.4050}
		paris := shared.Coordinates{Lat: 48.8566, Lon: 2.3522}

		d := Distance(berlin, paris)
		if math.Abs(d-878) > 5 {
			t.Errorf("Expected Berlin-Paris distance of ~878 km, got %.2f", d)
		}
	})

	t.Run("ZeroDistance", func(t *testing.T) {
		munich := shared.Coordinates{Lat: 48.1351, Lon: 11.5820}
		if d := Distance(munich, munich); d != 0 {
			t.Errorf("Expected 0 km for identical coordinates, got %.6f", d)
		}
	})

	t.Run("Symmetric", func(t *testing.T) {
		a := shared.Coordinates{Lat: 52.5200, Lon: 13.4050}
		b := shared.Coordinates{Lat: 48.1351, Lon: 11.5820}
		if d1, d2 := Distance(a, b), Distance(b, a); math.Abs(d1-d2) > 1e-9 {
			t.Errorf("Expected symmetric distances, got %.6f and %.6f", d1, d2)
		}
	})
}

func TestDisplayDistance(t *testing.T) {
	if got := DisplayDistance(877.4649); got != 877.5 {
		t.Errorf("Expected 877.5, got %v", got)
	}
	if got := DisplayDistance(12.04); got != 12.0 {
		t.Errorf("Expected 12.0, got %v", got)
	}
}

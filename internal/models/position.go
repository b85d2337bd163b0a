package models

import "math"

// Position is a single geolocation fix.
type Position struct {
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	AccuracyMeters float64 `json:"accuracyMeters,omitempty"`
}

// Valid reports whether both coordinates are finite numbers.
func (p Position) Valid() bool {
	return finite(p.Lat) && finite(p.Lng)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FixResponse is the raw JSON returned by the geolocation endpoint
// (ip-api style: lat/lon plus an optional accuracy radius).
type FixResponse struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Accuracy float64 `json:"accuracy"`
	Status   string  `json:"status,omitempty"`
}

// ToPosition converts the raw response to a Position.
// IP-based fixes without an accuracy radius are assumed city-level.
func (r *FixResponse) ToPosition() *Position {
	acc := r.Accuracy
	if acc <= 0 {
		acc = 5000
	}
	return &Position{
		Lat:            r.Lat,
		Lng:            r.Lon,
		AccuracyMeters: acc,
	}
}

// Package geo implements the nearest-station resolver. Everything here is
// pure computation over the inputs; no I/O, no shared state.
package geo

import (
	"errors"
	"math"

	"github.com/ibs-relief/relimap-cli/internal/models"
)

const earthRadiusMeters = 6371000

// distanceTolerance is the float tolerance for treating two candidate
// distances as tied. Ties resolve to catalog order.
const distanceTolerance = 1e-9

// DefaultAccuracyThreshold is the fix accuracy (meters) above which a match
// is flagged low-confidence.
const DefaultAccuracyThreshold = 200.0

// ErrNoStation is returned when no usable candidate exists.
var ErrNoStation = errors.New("no station found")

// Haversine returns the great-circle distance between two points in meters.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Options configures Resolve.
type Options struct {
	// AccuracyThreshold overrides DefaultAccuracyThreshold when > 0.
	AccuracyThreshold float64
}

// Match is a successful resolution.
type Match struct {
	Station        models.Station
	DistanceMeters float64
	// LowConfidence is set when the fix accuracy exceeds the threshold.
	// The match is still the nearest candidate; the caller decides whether
	// to confirm with the user before acting on it.
	LowConfidence bool
}

// Resolve returns the candidate nearest to pos by haversine distance.
// Candidates with non-finite coordinates are skipped rather than treated as
// an error. ErrNoStation is returned when the candidate set is empty or
// entirely filtered out.
func Resolve(pos models.Position, candidates []models.Station, opts Options) (*Match, error) {
	if !pos.Valid() {
		return nil, ErrNoStation
	}

	best := -1
	bestDist := math.MaxFloat64
	for i, s := range candidates {
		if !(models.Position{Lat: s.Lat, Lng: s.Lng}).Valid() {
			continue
		}
		d := Haversine(pos.Lat, pos.Lng, s.Lat, s.Lng)
		if best < 0 || d < bestDist-distanceTolerance {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return nil, ErrNoStation
	}

	threshold := opts.AccuracyThreshold
	if threshold <= 0 {
		threshold = DefaultAccuracyThreshold
	}

	return &Match{
		Station:        candidates[best],
		DistanceMeters: bestDist,
		LowConfidence:  pos.AccuracyMeters > threshold,
	}, nil
}

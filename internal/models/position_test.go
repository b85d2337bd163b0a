package models

import (
	"math"
	"testing"

	"github.com/ibs-relief/relimap-cli/internal/testutil"
)

func TestPosition_Valid(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"zero", Position{}, true},
		{"tokyo", Position{Lat: 35.6812, Lng: 139.7671}, true},
		{"nan lat", Position{Lat: math.NaN(), Lng: 139.7671}, false},
		{"nan lng", Position{Lat: 35.6812, Lng: math.NaN()}, false},
		{"inf lat", Position{Lat: math.Inf(1), Lng: 139.7671}, false},
		{"neg inf lng", Position{Lat: 35.6812, Lng: math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.pos.Valid(), tt.want)
		})
	}
}

func TestFixResponse_ToPosition(t *testing.T) {
	resp := FixResponse{Lat: 35.6909, Lon: 139.7003, Accuracy: 120}

	pos := resp.ToPosition()
	testutil.AssertFloatEqual(t, pos.Lat, 35.6909, 0.0001)
	testutil.AssertFloatEqual(t, pos.Lng, 139.7003, 0.0001)
	testutil.AssertFloatEqual(t, pos.AccuracyMeters, 120, 0.001)
}

func TestFixResponse_ToPosition_CityLevelDefault(t *testing.T) {
	// An IP fix without a radius is assumed city-level
	resp := FixResponse{Lat: 35.6812, Lon: 139.7671}
	testutil.AssertFloatEqual(t, resp.ToPosition().AccuracyMeters, 5000, 0.001)

	resp.Accuracy = -1
	testutil.AssertFloatEqual(t, resp.ToPosition().AccuracyMeters, 5000, 0.001)
}

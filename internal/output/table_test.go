package output

import (
	"bytes"
	"testing"

	"github.com/ibs-relief/relimap-cli/internal/geo"
	"github.com/ibs-relief/relimap-cli/internal/models"
	"github.com/ibs-relief/relimap-cli/internal/testutil"
)

func testStation() models.Station {
	return models.Station{
		ID:          "jy-shinjuku",
		Name:        "新宿",
		EnglishName: "Shinjuku",
		LineID:      "jy",
		Lat:         35.690921,
		Lng:         139.700258,
		Restroom:    models.Restroom{InsideGate: true, Stalls: 8},
	}
}

func TestRenderLines_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderLines(&buf, []models.Line{}, TableOptions{Colors: NewColors(ColorNever)})

	testutil.AssertContains(t, buf.String(), "No lines found")
}

func TestRenderLines_Single(t *testing.T) {
	lines := []models.Line{
		{
			ID:                   "jy",
			Name:                 "山手線",
			EnglishName:          "Yamanote Line",
			AverageTravelMinutes: 4,
			TimetableKey:         "jy",
		},
	}

	var buf bytes.Buffer
	RenderLines(&buf, lines, TableOptions{Colors: NewColors(ColorNever)})

	output := buf.String()
	testutil.AssertContains(t, output, "jy")
	testutil.AssertContains(t, output, "山手線")
	testutil.AssertContains(t, output, "Yamanote Line")
	testutil.AssertContains(t, output, "avg travel:")
	testutil.AssertContains(t, output, "4.0 min")
	testutil.AssertContains(t, output, "[live timetable]")
}

func TestRenderLines_NoTimetableKey(t *testing.T) {
	lines := []models.Line{
		{ID: "jk", Name: "京浜東北線", AverageTravelMinutes: 3.5},
	}

	var buf bytes.Buffer
	RenderLines(&buf, lines, TableOptions{Colors: NewColors(ColorNever)})

	testutil.AssertNotContains(t, buf.String(), "[live timetable]")
}

func TestRenderStations_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderStations(&buf, []models.Station{}, TableOptions{Colors: NewColors(ColorNever)})

	testutil.AssertContains(t, buf.String(), "No stations found")
}

func TestRenderStations_Single(t *testing.T) {
	var buf bytes.Buffer
	RenderStations(&buf, []models.Station{testStation()}, TableOptions{Colors: NewColors(ColorNever)})

	output := buf.String()
	testutil.AssertContains(t, output, "jy-shinjuku")
	testutil.AssertContains(t, output, "新宿")
	testutil.AssertContains(t, output, "(Shinjuku)")
	testutil.AssertNotContains(t, output, "35.690921")
}

func TestRenderStations_WithCoords(t *testing.T) {
	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever), ShowCoords: true}
	RenderStations(&buf, []models.Station{testStation()}, opts)

	output := buf.String()
	testutil.AssertContains(t, output, "at:")
	testutil.AssertContains(t, output, "35.690921")
	testutil.AssertContains(t, output, "139.700258")
}

func TestRenderMatch_Nil(t *testing.T) {
	var buf bytes.Buffer
	RenderMatch(&buf, nil, TableOptions{Colors: NewColors(ColorNever)})

	testutil.AssertContains(t, buf.String(), "No station found")
}

func TestRenderMatch_Basic(t *testing.T) {
	match := &geo.Match{
		Station:        testStation(),
		DistanceMeters: 142.4,
	}

	var buf bytes.Buffer
	RenderMatch(&buf, match, TableOptions{Colors: NewColors(ColorNever)})

	output := buf.String()
	testutil.AssertContains(t, output, "Nearest station:")
	testutil.AssertContains(t, output, "新宿")
	testutil.AssertContains(t, output, "142 m")
	testutil.AssertNotContains(t, output, "low-confidence")
}

func TestRenderMatch_LowConfidence(t *testing.T) {
	match := &geo.Match{
		Station:        testStation(),
		DistanceMeters: 980,
		LowConfidence:  true,
	}

	var buf bytes.Buffer
	RenderMatch(&buf, match, TableOptions{Colors: NewColors(ColorNever)})

	testutil.AssertContains(t, buf.String(), "low-confidence")
}

func TestRenderPrediction_Live(t *testing.T) {
	station := testStation()
	result := models.PredictionResult{
		Station:       &station,
		Mode:          models.MatchManual,
		WaitMinutes:   3.2,
		TravelMinutes: 4,
		TotalMinutes:  7.2,
		WaitSource:    models.WaitSourceLive,
		Steps:         []string{"Walk to the east exit.", "Board the inner loop."},
		FacilityText:  "Inside the gate, 8 stalls",
		Encouragement: "Almost there.",
	}

	var buf bytes.Buffer
	RenderPrediction(&buf, result, TableOptions{Colors: NewColors(ColorNever)})

	output := buf.String()
	testutil.AssertContains(t, output, "Target:")
	testutil.AssertContains(t, output, "新宿")
	testutil.AssertContains(t, output, "7.2")
	testutil.AssertContains(t, output, "[live]")
	testutil.AssertContains(t, output, "wait:")
	testutil.AssertContains(t, output, "travel:")
	testutil.AssertContains(t, output, "1. Walk to the east exit.")
	testutil.AssertContains(t, output, "2. Board the inner loop.")
	testutil.AssertContains(t, output, "Inside the gate, 8 stalls")
	testutil.AssertContains(t, output, "Almost there.")
	testutil.AssertNotContains(t, output, "generic estimate")
}

func TestRenderPrediction_Failed(t *testing.T) {
	station := testStation()
	result := models.PredictionResult{
		Station:      &station,
		TotalMinutes: 12,
		WaitSource:   models.WaitSourceDefault,
		Failed:       true,
		Steps:        []string{"Take the next train."},
		FacilityText: "Inside the gate",
	}

	var buf bytes.Buffer
	RenderPrediction(&buf, result, TableOptions{Colors: NewColors(ColorNever)})

	output := buf.String()
	testutil.AssertContains(t, output, "generic estimate")
	testutil.AssertContains(t, output, "12.0")
	// The wait/travel breakdown is meaningless on a failed prediction
	testutil.AssertNotContains(t, output, "wait:")
}

func TestRenderPrediction_GuidanceSource(t *testing.T) {
	station := testStation()
	result := models.PredictionResult{
		Station:      &station,
		TotalMinutes: 7.5,
		WaitSource:   models.WaitSourceGuidance,
	}

	var buf bytes.Buffer
	RenderPrediction(&buf, result, TableOptions{Colors: NewColors(ColorNever)})

	output := buf.String()
	testutil.AssertContains(t, output, "[guidance]")
	testutil.AssertNotContains(t, output, "wait:")
}

func TestRenderCountdown(t *testing.T) {
	station := testStation()
	result := models.PredictionResult{
		Station:      &station,
		FacilityText: "Inside the gate, 8 stalls",
	}

	var buf bytes.Buffer
	RenderCountdown(&buf, "4:59", result, TableOptions{Colors: NewColors(ColorNever)})

	output := buf.String()
	testutil.AssertContains(t, output, "Heading to")
	testutil.AssertContains(t, output, "新宿")
	testutil.AssertContains(t, output, "4:59")
	testutil.AssertContains(t, output, "Inside the gate, 8 stalls")
}

func TestTableOptions_DefaultColors(t *testing.T) {
	// A zero TableOptions must not panic
	var buf bytes.Buffer
	RenderLines(&buf, []models.Line{{ID: "jy", Name: "山手線", AverageTravelMinutes: 4}}, TableOptions{})
	testutil.AssertContains(t, buf.String(), "山手線")
}

package catalog

import (
	"testing"

	"github.com/ibs-relief/relimap-cli/internal/testutil"
)

const sampleCatalog = `
lines:
  - id: jy
    name: 山手線
    english: Yamanote Line
    color: "118"
    average_travel_minutes: 4
    timetable_key: jy
  - id: jk
    name: 京浜東北線
    average_travel_minutes: 3.5
stations:
  - id: jy-shinjuku
    name: 新宿
    english: Shinjuku
    line: jy
    lat: 35.690921
    lng: 139.700258
    restroom:
      inside_gate: true
      stalls: 8
  - id: jy-shibuya
    name: 渋谷
    english: Shibuya
    line: jy
    lat: 35.658517
    lng: 139.701334
  - id: jk-kanda
    name: 神田
    line: jk
    lat: 35.69169
    lng: 139.770883
`

func TestLoad(t *testing.T) {
	cat, err := Load()
	testutil.AssertNil(t, err)

	lines := cat.Lines()
	testutil.AssertTrue(t, len(lines) >= 3)

	// The Yamanote loop carries all 30 stations
	testutil.AssertLen(t, cat.Stations("jy"), 30)

	// The first catalog line is the designated default
	testutil.AssertEqual(t, cat.DefaultLine().ID, "jy")
}

func TestParse(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	testutil.AssertNil(t, err)

	lines := cat.Lines()
	testutil.AssertLen(t, lines, 2)
	testutil.AssertEqual(t, lines[0].ID, "jy")
	testutil.AssertEqual(t, lines[0].TimetableKey, "jy")
	testutil.AssertEqual(t, lines[1].TimetableKey, "")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("lines: ["))
	testutil.AssertError(t, err)
}

func TestParse_MissingLines(t *testing.T) {
	_, err := Parse([]byte(`
stations:
  - id: jy-shinjuku
    name: 新宿
    line: jy
    lat: 35.690921
    lng: 139.700258
`))
	testutil.AssertError(t, err)
}

func TestParse_InvalidCoordinates(t *testing.T) {
	_, err := Parse([]byte(`
lines:
  - id: jy
    name: 山手線
    average_travel_minutes: 4
stations:
  - id: jy-shinjuku
    name: 新宿
    line: jy
    lat: 135.690921
    lng: 239.700258
`))
	testutil.AssertError(t, err)
}

func TestParse_ZeroTravelMinutes(t *testing.T) {
	_, err := Parse([]byte(`
lines:
  - id: jy
    name: 山手線
    average_travel_minutes: 0
stations:
  - id: jy-shinjuku
    name: 新宿
    line: jy
    lat: 35.690921
    lng: 139.700258
`))
	testutil.AssertError(t, err)
}

func TestParse_DuplicateStationID(t *testing.T) {
	_, err := Parse([]byte(`
lines:
  - id: jy
    name: 山手線
    average_travel_minutes: 4
stations:
  - id: jy-shinjuku
    name: 新宿
    line: jy
    lat: 35.690921
    lng: 139.700258
  - id: jy-shinjuku
    name: 渋谷
    line: jy
    lat: 35.658517
    lng: 139.701334
`))
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "duplicate station")
}

func TestParse_UnknownLineReference(t *testing.T) {
	_, err := Parse([]byte(`
lines:
  - id: jy
    name: 山手線
    average_travel_minutes: 4
stations:
  - id: jc-tokyo
    name: 東京
    line: jc
    lat: 35.681391
    lng: 139.766103
`))
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "unknown line")
}

func TestCatalog_Stations(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	testutil.AssertNil(t, err)

	// Filtered by line, in catalog order
	jy := cat.Stations("jy")
	testutil.AssertLen(t, jy, 2)
	testutil.AssertEqual(t, jy[0].ID, "jy-shinjuku")
	testutil.AssertEqual(t, jy[1].ID, "jy-shibuya")

	// Empty id returns the full catalog
	testutil.AssertLen(t, cat.Stations(""), 3)

	// Unknown line yields an empty slice
	testutil.AssertLen(t, cat.Stations("nope"), 0)
}

func TestCatalog_StationLookup(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	testutil.AssertNil(t, err)

	s, ok := cat.Station("jy-shibuya")
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, s.Name, "渋谷")
	testutil.AssertEqual(t, s.LineID, "jy")

	_, ok = cat.Station("jy-nowhere")
	testutil.AssertFalse(t, ok)
}

func TestCatalog_LineLookup(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	testutil.AssertNil(t, err)

	l, ok := cat.Line("jk")
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, l.Name, "京浜東北線")

	_, ok = cat.Line("zz")
	testutil.AssertFalse(t, ok)
}

func TestCatalog_StationsReturnsCopy(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	testutil.AssertNil(t, err)

	all := cat.Stations("")
	all[0].Name = "mutated"

	fresh, _ := cat.Station(all[0].ID)
	testutil.AssertEqual(t, fresh.Name, "新宿")
}

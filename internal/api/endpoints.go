package api

import "github.com/joho/godotenv"

const (
	// DefaultTimetableURL is the base URL of the live timetable service.
	// GET {base}/timetable/{key}?day=weekday|holiday
	DefaultTimetableURL = "https://api.ibs-relief.jp/v1"

	// DefaultGuidanceURL is the base URL of the guidance service.
	// POST {base}/guide
	DefaultGuidanceURL = "https://guide.ibs-relief.jp/v1"

	// DefaultGeoIPURL is the base URL of the IP geolocation service.
	// GET {base}/json
	DefaultGeoIPURL = "https://geoip.ibs-relief.jp"

	// EndpointTimetable is the day-typed departure list for one line.
	// Required params: day
	EndpointTimetable = "/timetable"

	// EndpointGuide returns natural-language guidance for a station.
	EndpointGuide = "/guide"

	// EndpointGeoIP returns a coarse position fix for the caller's IP.
	EndpointGeoIP = "/json"
)

// Environment overrides for the collaborator base URLs.
const (
	EnvTimetableURL = "RELIMAP_TIMETABLE_URL"
	EnvGuidanceURL  = "RELIMAP_GUIDANCE_URL"
	EnvGeoIPURL     = "RELIMAP_GEOIP_URL"
)

// LoadEnv loads a .env file from the working directory when present.
// Missing files are not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

package models

// Station represents a single stop on a line. Stations are loaded once from
// the catalog and never mutated afterwards.
type Station struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Name        string   `json:"name" yaml:"name" validate:"required"`
	EnglishName string   `json:"englishName,omitempty" yaml:"english,omitempty"`
	LineID      string   `json:"lineId" yaml:"line" validate:"required"`
	Lat         float64  `json:"lat" yaml:"lat" validate:"required,latitude"`
	Lng         float64  `json:"lng" yaml:"lng" validate:"required,longitude"`
	Restroom    Restroom `json:"restroom" yaml:"restroom"`
}

// Restroom holds the facility info shown alongside the countdown.
type Restroom struct {
	InsideGate bool `json:"insideGate" yaml:"inside_gate"`
	Stalls     int  `json:"stalls" yaml:"stalls" validate:"gte=0"`
}

// DisplayName returns the English name when present, otherwise the native one.
func (s *Station) DisplayName() string {
	if s.EnglishName != "" {
		return s.EnglishName
	}
	return s.Name
}

// Line represents a transit line owning zero or more stations.
type Line struct {
	ID string `json:"id" yaml:"id" validate:"required"`
	// Name is the native display name, e.g. 山手線.
	Name        string `json:"name" yaml:"name" validate:"required"`
	EnglishName string `json:"englishName,omitempty" yaml:"english,omitempty"`
	// Color is an ANSI 256 color token used by the TUI.
	Color string `json:"color" yaml:"color"`
	// AverageTravelMinutes is the static ride time used as the travel leg of
	// every prediction. It is configured, never computed live.
	AverageTravelMinutes float64 `json:"averageTravelMinutes" yaml:"average_travel_minutes" validate:"gt=0"`
	// TimetableKey identifies this line at the live timetable service.
	// Empty means no live lookup is available.
	TimetableKey string `json:"timetableKey,omitempty" yaml:"timetable_key,omitempty"`
}

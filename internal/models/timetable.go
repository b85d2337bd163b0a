package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayType selects the timetable variant for a calendar date.
type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeHoliday DayType = "holiday"
)

// DayTypeFor returns the timetable variant for the given local date.
// Saturdays and Sundays use the weekend/holiday table.
func DayTypeFor(t time.Time) DayType {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return DayTypeHoliday
	default:
		return DayTypeWeekday
	}
}

// TimetableResponse is the raw JSON returned by the timetable service.
type TimetableResponse struct {
	Departures []string `json:"departures"`
}

// Timetable holds the parsed departure times of one line for one day type.
type Timetable struct {
	Departures []TimeOfDay
}

// TimeOfDay is a wall-clock departure time (local HH:MM).
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ToTimetable converts the raw response, silently dropping entries that do
// not parse as HH:MM. A response with only malformed entries yields an empty
// timetable, which callers treat as "no data".
func (r *TimetableResponse) ToTimetable() *Timetable {
	tt := &Timetable{}
	for _, s := range r.Departures {
		if tod, err := parseTimeOfDay(s); err == nil {
			tt.Departures = append(tt.Departures, tod)
		}
	}
	return tt
}

// parseTimeOfDay parses a local "HH:MM" string.
func parseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %q", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// MinutesUntilNext returns the minutes from now until the first departure
// strictly after now, and false when no future departure exists today.
func (t *Timetable) MinutesUntilNext(now time.Time) (float64, bool) {
	best := -1.0
	for _, d := range t.Departures {
		dep := time.Date(now.Year(), now.Month(), now.Day(), d.Hour, d.Minute, 0, 0, now.Location())
		diff := dep.Sub(now).Minutes()
		if diff <= 0 {
			continue
		}
		if best < 0 || diff < best {
			best = diff
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

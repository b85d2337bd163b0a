package models

// MatchMode records how the target station was chosen.
type MatchMode string

const (
	MatchAutomatic MatchMode = "automatic"
	MatchManual    MatchMode = "manual"
)

// WaitSource records where the wait estimate came from, so callers can tell
// a live timetable value apart from the canned default.
type WaitSource string

const (
	WaitSourceLive    WaitSource = "live"
	WaitSourceDefault WaitSource = "default"
	// WaitSourceGuidance marks the degenerate configuration where no line
	// context exists and the guidance service's own estimate is authoritative.
	WaitSourceGuidance WaitSource = "guidance"
)

// PredictionResult is the complete output of one prediction. It is created
// fresh per navigation request and superseded, never merged, by the next one.
type PredictionResult struct {
	Station       *Station   `json:"station"`
	Mode          MatchMode  `json:"mode"`
	WaitMinutes   float64    `json:"waitMinutes"`
	TravelMinutes float64    `json:"travelMinutes"`
	TotalMinutes  float64    `json:"totalMinutes"`
	WaitSource    WaitSource `json:"waitSource"`
	Steps         []string   `json:"steps"`
	FacilityText  string     `json:"facilityText"`
	Encouragement string     `json:"encouragement"`
	// Failed marks the terminal safety net: every upstream source was
	// unavailable and the result carries generic content with a fixed total.
	Failed bool `json:"failed,omitempty"`
}

// GuidanceResponse is the raw JSON returned by the guidance service.
type GuidanceResponse struct {
	Message    string   `json:"message"`
	Steps      []string `json:"steps"`
	ToiletInfo string   `json:"toiletInfo"`
	Minutes    float64  `json:"minutes"`
}

// Guidance is the natural-language portion of a prediction.
type Guidance struct {
	Message    string
	Steps      []string
	ToiletInfo string
	Minutes    float64
}

// ToGuidance converts the raw response to a Guidance.
func (r *GuidanceResponse) ToGuidance() *Guidance {
	return &Guidance{
		Message:    r.Message,
		Steps:      r.Steps,
		ToiletInfo: r.ToiletInfo,
		Minutes:    r.Minutes,
	}
}

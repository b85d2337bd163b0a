// Package predict implements the ETA pipeline: a static per-line travel
// average, an optional live next-departure lookup and a guidance fetch are
// merged into a single PredictionResult. This is the only layer allowed to
// substitute fallback content; it never returns an error past its boundary.
package predict

import (
	"context"
	"fmt"
	"time"

	"github.com/ibs-relief/relimap-cli/internal/api"
	"github.com/ibs-relief/relimap-cli/internal/catalog"
	"github.com/ibs-relief/relimap-cli/internal/models"
)

const (
	// DefaultWaitMinutes is the wait estimate used when no live departure
	// is available.
	DefaultWaitMinutes = 5.0

	// FailedTotalMinutes is the fixed total used when every upstream
	// source is unavailable.
	FailedTotalMinutes = 12.0
)

// Predictor computes arrival-time estimates. It holds no per-call state;
// every Predict recomputes from scratch.
type Predictor struct {
	client  *api.Client
	catalog *catalog.Catalog
	now     func() time.Time
}

// Option configures the Predictor
type Option func(*Predictor)

// WithClock overrides the time source (used in tests).
func WithClock(now func() time.Time) Option {
	return func(p *Predictor) {
		p.now = now
	}
}

// New creates a Predictor. The catalog may be nil, in which case no line
// context exists and the guidance service's own minute estimate is
// authoritative for every prediction.
func New(client *api.Client, cat *catalog.Catalog, opts ...Option) *Predictor {
	p := &Predictor{
		client:  client,
		catalog: cat,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Predict produces the arrival estimate and guidance for one target station.
// Individual sub-fetch failures degrade to canned defaults; the result is
// always renderable.
func (p *Predictor) Predict(ctx context.Context, target models.Station, origin *models.Position, mode models.MatchMode) models.PredictionResult {
	line := p.lineFor(target)
	if line == nil {
		return p.predictFromGuidance(ctx, target, origin, mode)
	}

	result := models.PredictionResult{
		Station:       &target,
		Mode:          mode,
		TravelMinutes: line.AverageTravelMinutes,
		WaitMinutes:   DefaultWaitMinutes,
		WaitSource:    models.WaitSourceDefault,
	}

	liveOK := false
	if line.TimetableKey != "" {
		now := p.now().In(p.client.Timezone())
		if wait, ok := p.nextDeparture(ctx, line.TimetableKey, now); ok {
			result.WaitMinutes = wait
			result.WaitSource = models.WaitSourceLive
			liveOK = true
		}
	}

	guidance, err := p.fetchGuidance(ctx, target, line, origin, mode)
	if err != nil && !liveOK {
		// Terminal safety net: nothing live contributed.
		result.Failed = true
		result.WaitMinutes = 0
		result.TravelMinutes = 0
		result.TotalMinutes = FailedTotalMinutes
		applyGuidance(&result, fallbackGuidance(&target))
		return result
	}
	applyGuidance(&result, guidance)

	result.TotalMinutes = result.WaitMinutes + result.TravelMinutes
	return result
}

// predictFromGuidance handles the degenerate configuration without any line
// context: the guidance service's own minute estimate is the total.
func (p *Predictor) predictFromGuidance(ctx context.Context, target models.Station, origin *models.Position, mode models.MatchMode) models.PredictionResult {
	result := models.PredictionResult{
		Station:    &target,
		Mode:       mode,
		WaitSource: models.WaitSourceGuidance,
	}

	guidance, err := p.fetchGuidance(ctx, target, nil, origin, mode)
	if err != nil {
		result.Failed = true
		result.TotalMinutes = FailedTotalMinutes
		applyGuidance(&result, fallbackGuidance(&target))
		return result
	}
	applyGuidance(&result, guidance)

	result.TotalMinutes = guidance.Minutes
	if result.TotalMinutes <= 0 {
		result.TotalMinutes = FailedTotalMinutes
	}
	return result
}

// lineFor resolves the target's line configuration, falling back to the
// catalog's designated default line.
func (p *Predictor) lineFor(target models.Station) *models.Line {
	if p.catalog == nil {
		return nil
	}
	if line, ok := p.catalog.Line(target.LineID); ok {
		return line
	}
	return p.catalog.DefaultLine()
}

// nextDeparture fetches the day-typed timetable and returns the minutes
// until the next departure strictly after now. Any failure, including an
// empty table or no remaining departure, reports !ok.
func (p *Predictor) nextDeparture(ctx context.Context, key string, now time.Time) (float64, bool) {
	tt, err := p.client.GetTimetable(ctx, key, models.DayTypeFor(now))
	if err != nil {
		return 0, false
	}
	return tt.MinutesUntilNext(now)
}

// fetchGuidance requests guidance, substituting the canned set on failure
// and filling in any missing field so the guidance pane is never empty.
// A known origin rides along so the service can phrase the approach from
// where the user actually is.
func (p *Predictor) fetchGuidance(ctx context.Context, target models.Station, line *models.Line, origin *models.Position, mode models.MatchMode) (*models.Guidance, error) {
	req := api.GuidanceRequest{
		Station:   target.Name,
		English:   target.EnglishName,
		Lat:       target.Lat,
		Lng:       target.Lng,
		Automatic: mode == models.MatchAutomatic,
	}
	if line != nil {
		req.Line = line.ID
	}
	if origin != nil && origin.Valid() {
		o := *origin
		req.Origin = &o
	}

	guidance, err := p.client.GetGuidance(ctx, req)
	if err != nil {
		return fallbackGuidance(&target), err
	}

	canned := fallbackGuidance(&target)
	if len(guidance.Steps) == 0 {
		guidance.Steps = canned.Steps
	}
	if guidance.Message == "" {
		guidance.Message = canned.Message
	}
	if guidance.ToiletInfo == "" {
		guidance.ToiletInfo = canned.ToiletInfo
	}
	return guidance, nil
}

func applyGuidance(result *models.PredictionResult, g *models.Guidance) {
	result.Steps = g.Steps
	result.FacilityText = g.ToiletInfo
	result.Encouragement = g.Message
}

// fallbackGuidance builds the canned guidance set from catalog data alone.
func fallbackGuidance(target *models.Station) *models.Guidance {
	name := target.DisplayName()

	gate := "outside the ticket gate"
	if target.Restroom.InsideGate {
		gate = "inside the ticket gate"
	}
	facility := fmt.Sprintf("Restroom %s", gate)
	if target.Restroom.Stalls > 0 {
		facility = fmt.Sprintf("%s, %d stalls", facility, target.Restroom.Stalls)
	}

	return &models.Guidance{
		Message: "Almost there. Breathe slowly and walk at a steady pace.",
		Steps: []string{
			fmt.Sprintf("Take the next train to %s.", name),
			fmt.Sprintf("Get off at %s and follow the restroom signs.", name),
			"The nearest restroom is marked on the platform guide map.",
		},
		ToiletInfo: facility,
	}
}

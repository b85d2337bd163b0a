package output

import (
	"fmt"
	"io"

	"github.com/ibs-relief/relimap-cli/internal/geo"
	"github.com/ibs-relief/relimap-cli/internal/models"
)

// TableOptions configures the table output
type TableOptions struct {
	Colors     *Colors
	ShowCoords bool
}

func (o TableOptions) colors() *Colors {
	if o.Colors == nil {
		return NewColors(ColorNever)
	}
	return o.Colors
}

// RenderLines renders the line catalog as a formatted table
func RenderLines(w io.Writer, lines []models.Line, opts TableOptions) {
	if len(lines) == 0 {
		_, _ = fmt.Fprintln(w, "No lines found.")
		return
	}

	c := opts.colors()

	_, _ = fmt.Fprintln(w, c.Header("Lines:"))
	_, _ = fmt.Fprintln(w)

	for _, line := range lines {
		_, _ = fmt.Fprintf(w, "  %s %s\n", c.Line("%-4s", line.ID), c.Station(line.Name))
		if line.EnglishName != "" {
			_, _ = fmt.Fprintf(w, "       %s\n", c.Muted(line.EnglishName))
		}
		_, _ = fmt.Fprintf(w, "       %s %.1f min", c.Muted("avg travel:"), line.AverageTravelMinutes)
		if line.TimetableKey != "" {
			_, _ = fmt.Fprintf(w, "  %s", c.Live("[live timetable]"))
		}
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w)
	}
}

// RenderStations renders stations as a formatted table
func RenderStations(w io.Writer, stations []models.Station, opts TableOptions) {
	if len(stations) == 0 {
		_, _ = fmt.Fprintln(w, "No stations found.")
		return
	}

	c := opts.colors()

	for _, s := range stations {
		_, _ = fmt.Fprintf(w, "  %s %s", c.Line("%-20s", s.ID), c.Station(s.Name))
		if s.EnglishName != "" {
			_, _ = fmt.Fprintf(w, " %s", c.Muted("(%s)", s.EnglishName))
		}
		_, _ = fmt.Fprintln(w)
		if opts.ShowCoords {
			_, _ = fmt.Fprintf(w, "    %s %.6f, %.6f\n", c.Muted("at:"), s.Lat, s.Lng)
		}
	}
}

// RenderMatch renders a nearest-station resolution result
func RenderMatch(w io.Writer, match *geo.Match, opts TableOptions) {
	if match == nil {
		_, _ = fmt.Fprintln(w, "No station found.")
		return
	}

	c := opts.colors()

	_, _ = fmt.Fprintf(w, "%s %s", c.Header("Nearest station:"), c.Station(match.Station.Name))
	if match.Station.EnglishName != "" {
		_, _ = fmt.Fprintf(w, " %s", c.Muted("(%s)", match.Station.EnglishName))
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "  %s %.0f m\n", c.Muted("distance:"), match.DistanceMeters)
	if match.LowConfidence {
		_, _ = fmt.Fprintf(w, "  %s\n", c.Fallback("low-confidence fix — confirm before relying on this match"))
	}
}

// RenderPrediction renders a full prediction with guidance steps
func RenderPrediction(w io.Writer, result models.PredictionResult, opts TableOptions) {
	c := opts.colors()

	if result.Station != nil {
		_, _ = fmt.Fprintf(w, "%s %s\n", c.Header("Target:"), c.Station(result.Station.Name))
	}
	if result.Failed {
		_, _ = fmt.Fprintf(w, "%s\n", c.Error("Live data unavailable — showing a generic estimate."))
	}

	_, _ = fmt.Fprintf(w, "%s %s min %s\n",
		c.Header("ETA:"),
		c.Time("%.1f", result.TotalMinutes),
		c.FormatWaitSource(string(result.WaitSource)),
	)
	if result.WaitSource != models.WaitSourceGuidance && !result.Failed {
		_, _ = fmt.Fprintf(w, "  %s %.1f min   %s %.1f min\n",
			c.Muted("wait:"), result.WaitMinutes,
			c.Muted("travel:"), result.TravelMinutes,
		)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, c.Header("Guidance:"))
	for i, step := range result.Steps {
		_, _ = fmt.Fprintf(w, "  %s %s\n", c.Muted("%d.", i+1), step)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%s %s\n", c.Facility("🚻"), result.FacilityText)
	_, _ = fmt.Fprintf(w, "%s\n", c.Muted(result.Encouragement))
}

// RenderCountdown renders one watch-mode countdown frame
func RenderCountdown(w io.Writer, display string, result models.PredictionResult, opts TableOptions) {
	c := opts.colors()

	if result.Station != nil {
		_, _ = fmt.Fprintf(w, "%s %s\n\n", c.Muted("Heading to"), c.Station(result.Station.Name))
	}
	_, _ = fmt.Fprintf(w, "    %s\n\n", c.Time("%s", display))
	_, _ = fmt.Fprintf(w, "%s %s\n", c.Facility("🚻"), result.FacilityText)
}

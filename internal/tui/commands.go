package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ibs-relief/relimap-cli/internal/api"
	"github.com/ibs-relief/relimap-cli/internal/models"
	"github.com/ibs-relief/relimap-cli/internal/predict"
)

const apiTimeout = 5 * time.Second

// locate returns a tea.Cmd that fetches one geolocation fix.
func locate(client *api.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		pos, err := client.Locate(ctx)
		return fixResultMsg{
			gen: gen,
			pos: pos,
			err: err,
		}
	}
}

// runPrediction returns a tea.Cmd that runs the full prediction pipeline.
func runPrediction(p *predict.Predictor, target models.Station, origin *models.Position, mode models.MatchMode, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		return predictionResultMsg{
			gen:    gen,
			result: p.Predict(ctx, target, origin, mode),
		}
	}
}

// countdownTick returns a tea.Cmd that sends one countdown tick at the
// engine's resolution. Ticks run on their own schedule and are never
// blocked by in-flight fetches.
func countdownTick(resolutionMillis int64, gen int) tea.Cmd {
	return tea.Tick(time.Duration(resolutionMillis)*time.Millisecond, func(t time.Time) tea.Msg {
		return countdownTickMsg{gen: gen, t: t}
	})
}

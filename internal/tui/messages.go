package tui

import (
	"time"

	"github.com/ibs-relief/relimap-cli/internal/models"
)

// fixResultMsg carries a geolocation fix back to the model.
// gen is used for stale-result detection.
type fixResultMsg struct {
	gen int
	pos *models.Position
	err error
}

// predictionResultMsg carries a finished prediction.
// The predictor never fails past its boundary, so there is no err field;
// degraded results arrive as regular (possibly Failed) predictions.
type predictionResultMsg struct {
	gen    int
	result models.PredictionResult
}

// countdownTickMsg drives one countdown decrement.
type countdownTickMsg struct {
	gen int
	t   time.Time
}

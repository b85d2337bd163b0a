package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ibs-relief/relimap-cli/internal/api"
	"github.com/ibs-relief/relimap-cli/internal/catalog"
	"github.com/ibs-relief/relimap-cli/internal/countdown"
	"github.com/ibs-relief/relimap-cli/internal/geo"
	"github.com/ibs-relief/relimap-cli/internal/models"
	"github.com/ibs-relief/relimap-cli/internal/predict"
)

// navMode is the single source of truth for which screen is active.
// Exactly one mode is live at any time; the station list and the countdown
// never render together.
type navMode int

const (
	modeIdle navMode = iota
	modeStations
	modeCountdown
)

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	client    *api.Client
	catalog   *catalog.Catalog
	predictor *predict.Predictor
	width     int
	height    int

	mode navMode
	// gen is bumped on every mode transition. Async results carry the gen
	// they were started under; stale ones are discarded on arrival.
	gen int

	spin spinner.Model

	// Idle screen
	lines      []models.Line
	lineCursor int
	locating   bool
	errMsg     string
	// pendingMatch holds a low-confidence automatic match awaiting the
	// user's confirmation before the countdown starts; pendingFix is the
	// position it was resolved from, kept so a confirmed match still
	// carries the user's origin into the prediction.
	pendingMatch *geo.Match
	pendingFix   *models.Position

	// Station list screen
	selectedLine  *models.Line
	stations      []models.Station
	stationCursor int

	// Countdown screen
	predicting     bool
	prediction     *models.PredictionResult
	engine         *countdown.Engine
	tickResolution int64
}

// New creates a new TUI model.
func New(client *api.Client, cat *catalog.Catalog, predictor *predict.Predictor, fine bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleLoadingSpinner

	resolution := int64(countdown.ResolutionCoarse)
	if fine {
		resolution = countdown.ResolutionFine
	}

	return Model{
		client:         client,
		catalog:        cat,
		predictor:      predictor,
		mode:           modeIdle,
		spin:           sp,
		lines:          cat.Lines(),
		engine:         countdown.New(),
		tickResolution: resolution,
	}
}

// locateItemIndex is the idle-list index of the "find nearest station" entry,
// placed after the last line.
func (m Model) locateItemIndex() int {
	return len(m.lines)
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

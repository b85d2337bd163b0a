package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ibs-relief/relimap-cli/internal/geo"
	"github.com/ibs-relief/relimap-cli/internal/models"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case fixResultMsg:
		return m.handleFixResult(msg)

	case predictionResultMsg:
		return m.handlePredictionResult(msg)

	case countdownTickMsg:
		return m.handleCountdownTick(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// enterIdle clears every other screen's state and bumps the generation so
// late-arriving results from the previous state are discarded.
func (m Model) enterIdle() Model {
	m.mode = modeIdle
	m.gen++
	m.engine.Reset()
	m.prediction = nil
	m.predicting = false
	m.locating = false
	m.pendingMatch = nil
	m.pendingFix = nil
	m.selectedLine = nil
	m.stations = nil
	m.stationCursor = 0
	m.errMsg = ""
	return m
}

// beginCountdown transitions into the countdown screen and starts exactly
// one prediction for the chosen target.
func (m Model) beginCountdown(target models.Station, origin *models.Position, mode models.MatchMode) (Model, tea.Cmd) {
	m.mode = modeCountdown
	m.gen++
	m.predicting = true
	m.prediction = nil
	m.pendingMatch = nil
	m.pendingFix = nil
	m.errMsg = ""
	m.engine.Reset()
	return m, tea.Batch(m.spin.Tick, runPrediction(m.predictor, target, origin, mode, m.gen))
}

func (m Model) handleFixResult(msg fixResultMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results
	if msg.gen != m.gen || m.mode != modeIdle {
		return m, nil
	}
	m.locating = false
	if msg.err != nil {
		m.errMsg = "Could not determine your position: " + msg.err.Error()
		return m, nil
	}

	match, err := geo.Resolve(*msg.pos, m.catalog.Stations(""), geo.Options{})
	if err != nil {
		m.errMsg = "No station found near your position."
		return m, nil
	}

	if match.LowConfidence {
		// Ask before acting on a coarse fix.
		m.pendingMatch = match
		m.pendingFix = msg.pos
		return m, nil
	}

	return m.beginCountdown(match.Station, msg.pos, models.MatchAutomatic)
}

func (m Model) handlePredictionResult(msg predictionResultMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results
	if msg.gen != m.gen || m.mode != modeCountdown {
		return m, nil
	}
	m.predicting = false
	result := msg.result
	m.prediction = &result

	m.engine.Start(int64(result.TotalMinutes*60000), m.tickResolution)
	return m, countdownTick(m.tickResolution, m.gen)
}

func (m Model) handleCountdownTick(msg countdownTickMsg) (tea.Model, tea.Cmd) {
	// Ignore ticks from a superseded countdown
	if msg.gen != m.gen || m.mode != modeCountdown || !m.engine.Running() {
		return m, nil
	}
	m.engine.Tick()
	if m.engine.Exhausted() {
		// Display stays at zero until the user resets.
		return m, nil
	}
	return m, countdownTick(m.tickResolution, m.gen)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	switch m.mode {
	case modeIdle:
		return m.handleIdleKeys(msg)
	case modeStations:
		return m.handleStationKeys(msg)
	case modeCountdown:
		return m.handleCountdownKeys(msg)
	}

	return m, nil
}

func (m Model) handleIdleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Confirmation prompt for a low-confidence automatic match takes
	// precedence over list navigation.
	if m.pendingMatch != nil {
		switch msg.String() {
		case "enter", "y":
			match := *m.pendingMatch
			return m.beginCountdown(match.Station, m.pendingFix, models.MatchAutomatic)
		case "esc", "n":
			m.pendingMatch = nil
			m.pendingFix = nil
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.lineCursor < m.locateItemIndex() {
			m.lineCursor++
		}
		return m, nil

	case "k", "up":
		if m.lineCursor > 0 {
			m.lineCursor--
		}
		return m, nil

	case "g", "home":
		m.lineCursor = 0
		return m, nil

	case "G", "end":
		m.lineCursor = m.locateItemIndex()
		return m, nil

	case "esc":
		m.errMsg = ""
		return m, nil

	case "enter":
		if m.lineCursor == m.locateItemIndex() {
			if m.locating {
				return m, nil
			}
			m.locating = true
			m.errMsg = ""
			return m, tea.Batch(m.spin.Tick, locate(m.client, m.gen))
		}
		line := m.lines[m.lineCursor]
		m.mode = modeStations
		m.gen++
		m.selectedLine = &line
		m.stations = m.catalog.Stations(line.ID)
		m.stationCursor = 0
		m.errMsg = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleStationKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Defensive clamp to prevent out-of-bounds cursor
	if len(m.stations) > 0 {
		if m.stationCursor < 0 {
			m.stationCursor = 0
		}
		if m.stationCursor >= len(m.stations) {
			m.stationCursor = len(m.stations) - 1
		}
	}

	switch msg.String() {
	case "j", "down":
		if m.stationCursor < len(m.stations)-1 {
			m.stationCursor++
		}
		return m, nil

	case "k", "up":
		if m.stationCursor > 0 {
			m.stationCursor--
		}
		return m, nil

	case "g", "home":
		m.stationCursor = 0
		return m, nil

	case "G", "end":
		if len(m.stations) > 0 {
			m.stationCursor = len(m.stations) - 1
		}
		return m, nil

	case "esc":
		return m.enterIdle(), nil

	case "enter":
		if len(m.stations) > 0 {
			return m.beginCountdown(m.stations[m.stationCursor], nil, models.MatchManual)
		}
	}

	return m, nil
}

func (m Model) handleCountdownKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "r", "enter":
		return m.enterIdle(), nil
	}
	return m, nil
}

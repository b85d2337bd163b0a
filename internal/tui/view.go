package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ibs-relief/relimap-cli/internal/models"
)

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := renderHeader()
	statusBar := m.renderStatusBar()

	var body string
	switch m.mode {
	case modeIdle:
		body = m.renderIdle()
	case modeStations:
		body = m.renderStationList()
	case modeCountdown:
		body = m.renderCountdown()
	}

	headerHeight := lipgloss.Height(header)
	statusHeight := lipgloss.Height(statusBar)
	panelHeight := m.height - headerHeight - statusHeight - 2
	if panelHeight < 3 {
		panelHeight = 3
	}
	panelWidth := m.width - 4
	if panelWidth < 20 {
		panelWidth = 20
	}

	panel := stylePanel.
		Width(panelWidth).
		Height(panelHeight).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, panel, statusBar)
}

// renderHeader renders the brand name.
func renderHeader() string {
	title := "" +
		"          _ _                       \n" +
		" _ _ ___| (_)_ __  __ _ _ __       \n" +
		"| '_/ -_) | | '  \\/ _` | '_ \\    \n" +
		"|_| \\___|_|_|_|_|_\\__,_| .__/  🚻\n" +
		"                       |_|          "

	return styleLogo.Render(title)
}

// renderIdle renders the line list plus the locate-me entry.
func (m Model) renderIdle() string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("CHOOSE A LINE"))
	b.WriteString("\n\n")

	for i, line := range m.lines {
		label := lineStyle(line.Color).Render(line.Name)
		if line.EnglishName != "" {
			label += " " + styleMuted.Render(line.EnglishName)
		}
		if i == m.lineCursor {
			b.WriteString(styleSelected.Render(" > ") + label)
		} else {
			b.WriteString("   " + label)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	locateLabel := "Find my nearest station"
	if m.locating {
		locateLabel = m.spin.View() + " Locating..."
	}
	if m.lineCursor == m.locateItemIndex() {
		b.WriteString(styleSelected.Render(" > " + locateLabel))
	} else {
		b.WriteString("   " + locateLabel)
	}
	b.WriteString("\n")

	if m.pendingMatch != nil {
		b.WriteString("\n")
		b.WriteString(styleFallback.Render(fmt.Sprintf(
			"Your position fix is coarse. Nearest match: %s (%.0f m away).",
			m.pendingMatch.Station.Name, m.pendingMatch.DistanceMeters)))
		b.WriteString("\n")
		b.WriteString(styleMuted.Render("Press enter to confirm, esc to cancel."))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styleError.Render(m.errMsg))
	}

	return b.String()
}

// renderStationList renders the stations of the chosen line.
func (m Model) renderStationList() string {
	var b strings.Builder

	title := "STATIONS"
	if m.selectedLine != nil {
		title = lineStyle(m.selectedLine.Color).Render(m.selectedLine.Name)
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	if len(m.stations) == 0 {
		b.WriteString(styleMuted.Render(" No stations on this line."))
		return b.String()
	}

	// Keep the cursor in view
	maxVisible := m.height - 10
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.stationCursor, len(m.stations), maxVisible)

	for i := start; i < end; i++ {
		s := m.stations[i]
		name := s.Name
		if s.EnglishName != "" {
			name += " " + styleMuted.Render(s.EnglishName)
		}
		if i == m.stationCursor {
			b.WriteString(styleSelected.Render(" > ") + name)
		} else {
			b.WriteString("   " + name)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderCountdown renders the active guidance screen.
func (m Model) renderCountdown() string {
	var b strings.Builder

	if m.predicting || m.prediction == nil {
		b.WriteString(m.spin.View())
		b.WriteString(" Preparing your guidance...")
		return b.String()
	}

	p := m.prediction
	if p.Station != nil {
		b.WriteString(styleHeader.Render("Heading to " + p.Station.Name))
		if p.Station.EnglishName != "" {
			b.WriteString(styleMuted.Render(" (" + p.Station.EnglishName + ")"))
		}
		b.WriteString("\n\n")
	}

	timer := m.engine.Display()
	if m.engine.Exhausted() {
		b.WriteString(styleTimerDone.Render(timer))
	} else {
		b.WriteString(styleTimer.Render(timer))
	}
	b.WriteString("\n\n")

	if p.Failed {
		b.WriteString(styleError.Render("Live data unavailable — generic estimate."))
		b.WriteString("\n")
	} else if p.WaitSource == models.WaitSourceLive {
		b.WriteString(styleLive.Render(fmt.Sprintf("next train in %.1f min", p.WaitMinutes)))
		b.WriteString(styleMuted.Render(fmt.Sprintf("  + %.1f min ride", p.TravelMinutes)))
		b.WriteString("\n")
	} else if p.WaitSource == models.WaitSourceDefault {
		b.WriteString(styleFallback.Render(fmt.Sprintf("assuming %.0f min wait", p.WaitMinutes)))
		b.WriteString(styleMuted.Render(fmt.Sprintf("  + %.1f min ride", p.TravelMinutes)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, step := range p.Steps {
		b.WriteString(styleMuted.Render(fmt.Sprintf(" %d. ", i+1)))
		b.WriteString(step)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleFacility.Render("🚻 " + p.FacilityText))
	b.WriteString("\n")
	b.WriteString(styleMuted.Render(p.Encouragement))

	return b.String()
}

// renderStatusBar renders key hints for the active mode.
func (m Model) renderStatusBar() string {
	var hints string
	switch m.mode {
	case modeIdle:
		hints = " j/k move · enter select · q quit "
	case modeStations:
		hints = " j/k move · enter select · esc back · q quit "
	case modeCountdown:
		hints = " esc/r reset · q quit "
	}
	return styleStatusBar.Width(m.width).Render(hints)
}

// visibleRange computes the [start, end) window that keeps cursor in view.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}
	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
	}
	return start, end
}

package tui

import "github.com/charmbracelet/lipgloss"

// Colors matching the output/colors.go scheme
var (
	colorCyan    = lipgloss.Color("6")  // Cyan - line ids
	colorYellow  = lipgloss.Color("3")  // Yellow - degraded/fallback data
	colorRed     = lipgloss.Color("1")  // Red - errors
	colorGreen   = lipgloss.Color("2")  // Green - live data
	colorMagenta = lipgloss.Color("5")  // Magenta - facility info
	colorWhite   = lipgloss.Color("15") // White - times, text
	colorGray    = lipgloss.Color("8")  // Gray - muted text
)

// Text styles
var (
	styleHeader   = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleMuted    = lipgloss.NewStyle().Foreground(colorGray)
	styleError    = lipgloss.NewStyle().Foreground(colorRed)
	styleLive     = lipgloss.NewStyle().Foreground(colorGreen)
	styleFallback = lipgloss.NewStyle().Foreground(colorYellow)
	styleFacility = lipgloss.NewStyle().Foreground(colorMagenta)
)

// Big countdown timer
var styleTimer = lipgloss.NewStyle().
	Foreground(colorWhite).
	Bold(true).
	Padding(0, 2)

// Exhausted timer (red background so "arrive now" is unmissable)
var styleTimerDone = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(colorRed).
	Bold(true).
	Padding(0, 2)

// Panel border styles
var stylePanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorGray).
	Padding(0, 1)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Loading spinner
var styleLoadingSpinner = lipgloss.NewStyle().Foreground(colorYellow)

// Logo/brand style
var styleLogo = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)

// lineStyle renders a line name in its catalog color token.
func lineStyle(colorToken string) lipgloss.Style {
	if colorToken == "" {
		return styleHeader
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colorToken)).Bold(true)
}

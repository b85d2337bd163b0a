package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for different output types
type Colors struct {
	Time     func(format string, a ...interface{}) string
	Line     func(format string, a ...interface{}) string
	Station  func(format string, a ...interface{}) string
	Facility func(format string, a ...interface{}) string
	Live     func(format string, a ...interface{}) string
	Fallback func(format string, a ...interface{}) string
	Error    func(format string, a ...interface{}) string
	Header   func(format string, a ...interface{}) string
	Muted    func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	// Determine if we should use colors
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false // Force colors on
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		// Return no-op color functions
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return color.New().Sprintf(format, a...)
		}
		return &Colors{
			Time:     noColor,
			Line:     noColor,
			Station:  noColor,
			Facility: noColor,
			Live:     noColor,
			Fallback: noColor,
			Error:    noColor,
			Header:   noColor,
			Muted:    noColor,
		}
	}

	// Create colored functions
	return &Colors{
		Time:     color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Line:     color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Station:  color.New(color.FgWhite).SprintfFunc(),
		Facility: color.New(color.FgMagenta).SprintfFunc(),
		Live:     color.New(color.FgGreen).SprintfFunc(),
		Fallback: color.New(color.FgYellow).SprintfFunc(),
		Error:    color.New(color.FgRed, color.Bold).SprintfFunc(),
		Header:   color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Muted:    color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// FormatWaitSource renders the wait source tag: live values in green,
// canned defaults in yellow so degraded output is visible at a glance.
func (c *Colors) FormatWaitSource(source string) string {
	if source == "live" {
		return c.Live("[live]")
	}
	return c.Fallback("[" + source + "]")
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

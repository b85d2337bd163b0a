package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ibs-relief/relimap-cli/internal/api"
	"github.com/ibs-relief/relimap-cli/internal/catalog"
	"github.com/ibs-relief/relimap-cli/internal/countdown"
	"github.com/ibs-relief/relimap-cli/internal/geo"
	"github.com/ibs-relief/relimap-cli/internal/models"
	"github.com/ibs-relief/relimap-cli/internal/output"
	"github.com/ibs-relief/relimap-cli/internal/predict"
	"github.com/ibs-relief/relimap-cli/internal/tui"
)

var version = "0.3.0"

func main() {
	api.LoadEnv()
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "relimap",
	Short: "CLI for finding the nearest station restroom with a live countdown",
	Long: `relimap locates the transit station nearest to your position and
gives you a live, counting-down arrival estimate for reaching its
restroom, with step-by-step guidance.

Features:
  - Nearest-station resolution from coordinates or an IP-based fix
  - Live next-departure lookup blended with static per-line ride times
  - Graceful degradation when the timetable or guidance service is down
  - Full-screen TUI with line selection, station list and countdown
  - JSON output for scripting

Quick Start:
  1. Launch TUI:                relimap (or relimap tui)
  2. List lines:                relimap lines
  3. List stations of a line:   relimap stations jy
  4. Resolve nearest station:   relimap nearest 35.691:139.701
  5. Run a guided countdown:    relimap guide jy-shinjuku --watch`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, launch TUI
		if len(args) == 0 {
			return runTUI(cmd, args)
		}
		return cmd.Help()
	},
}

// Global flags
var (
	flagJSON    bool
	flagColor   string
	flagNoCache bool
)

// Command-specific flags
var (
	flagAccuracy float64
	flagFrom     string
	flagWatch    bool
	flagFine     bool
)

func init() {
	rootCmd.AddCommand(linesCmd)
	rootCmd.AddCommand(stationsCmd)
	rootCmd.AddCommand(nearestCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(tuiCmd)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Disable response caching")

	nearestCmd.Flags().Float64Var(&flagAccuracy, "accuracy", 0, "Fix accuracy in meters (flags low-confidence above threshold)")

	guideCmd.Flags().StringVar(&flagFrom, "from", "", "Origin coordinates as LAT:LON (defaults to IP-based fix)")
	guideCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Keep a live countdown running in the terminal")
	guideCmd.Flags().BoolVar(&flagFine, "fine", false, "Use the 10 ms countdown resolution")

	tuiCmd.Flags().BoolVar(&flagFine, "fine", false, "Use the 10 ms countdown resolution")
}

// createClient creates an API client with common options
func createClient() (*api.Client, error) {
	opts := []api.ClientOption{}

	// Enable caching unless disabled
	if !flagNoCache {
		opts = append(opts, api.WithDefaultCache())
	}

	return api.NewClient(opts...)
}

// getColorMode returns the color mode based on flag
func getColorMode() output.ColorMode {
	return output.ParseColorMode(flagColor)
}

var linesCmd = &cobra.Command{
	Use:   "lines",
	Short: "List the lines in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runLines,
}

var stationsCmd = &cobra.Command{
	Use:   "stations [line_id]",
	Short: "List stations, optionally limited to one line",
	Long: `List stations from the catalog. With a line id only that line's
stations are shown, in line order.

Examples:
  relimap stations
  relimap stations jy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStations,
}

var nearestCmd = &cobra.Command{
	Use:   "nearest <lat>:<lon>",
	Short: "Resolve the station nearest to a position",
	Long: `Resolve the catalog station nearest to a position.

The position must be specified as latitude:longitude in decimal degrees.
With --accuracy the match is flagged low-confidence when the radius
exceeds the 200 m threshold.

Examples:
  relimap nearest 35.691:139.701
  relimap nearest 35.691:139.701 --accuracy 350`,
	Args: cobra.ExactArgs(1),
	RunE: runNearest,
}

var guideCmd = &cobra.Command{
	Use:   "guide <station_id>",
	Short: "Run a full prediction for a station",
	Long: `Run the full prediction pipeline for a station: live next-departure
wait, static ride time and step-by-step guidance.

Watch Mode:
  --watch, -w            Keep a live countdown running until it hits zero
  --fine                 10 ms countdown resolution (with --watch)

Examples:
  relimap guide jy-shinjuku
  relimap guide jy-shinjuku --from 35.691:139.701
  relimap guide jy-shinjuku --watch --fine`,
	Args: cobra.ExactArgs(1),
	RunE: runGuide,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive full-screen TUI",
	Long: `Launch an interactive full-screen terminal UI: pick a line or let
relimap find your nearest station, then follow the live countdown.

Keyboard:
  j/k or arrows  Navigate lists
  Enter          Select / confirm
  Esc            Back / reset
  q              Quit`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	client, err := createClient()
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	predictor := predict.New(client, cat)
	model := tui.New(client, cat, predictor, flagFine)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runLines(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	lines := cat.Lines()

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(lines)
	}

	colors := output.NewColors(getColorMode())
	output.RenderLines(os.Stdout, lines, output.TableOptions{Colors: colors})
	return nil
}

func runStations(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	lineID := ""
	if len(args) == 1 {
		lineID = args[0]
		if _, ok := cat.Line(lineID); !ok {
			return fmt.Errorf("unknown line %q (use 'relimap lines')", lineID)
		}
	}

	stations := cat.Stations(lineID)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stations)
	}

	colors := output.NewColors(getColorMode())
	output.RenderStations(os.Stdout, stations, output.TableOptions{Colors: colors, ShowCoords: true})
	return nil
}

func runNearest(cmd *cobra.Command, args []string) error {
	pos, err := parseCoordinates(args[0])
	if err != nil {
		return err
	}
	pos.AccuracyMeters = flagAccuracy

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	match, err := geo.Resolve(*pos, cat.Stations(""), geo.Options{})
	if err != nil {
		return fmt.Errorf("no station found near %s", args[0])
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(match)
	}

	colors := output.NewColors(getColorMode())
	output.RenderMatch(os.Stdout, match, output.TableOptions{Colors: colors})
	return nil
}

func runGuide(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	station, ok := cat.Station(args[0])
	if !ok {
		return fmt.Errorf("unknown station %q (use 'relimap stations')", args[0])
	}

	client, err := createClient()
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	// Origin is optional context for the guidance call. Mode is manual when
	// the user named the station, automatic when we located them.
	var origin *models.Position
	mode := models.MatchManual
	if flagFrom != "" {
		origin, err = parseCoordinates(flagFrom)
		if err != nil {
			return err
		}
	}

	predictor := predict.New(client, cat)
	result := predictor.Predict(ctx, *station, origin, mode)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	colors := output.NewColors(getColorMode())
	output.RenderPrediction(os.Stdout, result, output.TableOptions{Colors: colors})

	if flagWatch {
		return runCountdownWatch(result, colors)
	}
	return nil
}

// runCountdownWatch drives the countdown engine with a real ticker and
// redraws the terminal each tick until the timer is exhausted or the user
// interrupts.
func runCountdownWatch(result models.PredictionResult, colors *output.Colors) error {
	resolution := int64(countdown.ResolutionCoarse)
	if flagFine {
		resolution = countdown.ResolutionFine
	}

	engine := countdown.New()
	engine.Start(int64(result.TotalMinutes*60000), resolution)

	sigChan := output.SetupSignalHandler()
	ticker := time.NewTicker(time.Duration(resolution) * time.Millisecond)
	defer ticker.Stop()

	output.HideCursor(os.Stdout)
	defer output.ShowCursor(os.Stdout)

	for {
		output.ClearScreen(os.Stdout)
		output.RenderCountdown(os.Stdout, engine.Display(), result, output.TableOptions{Colors: colors})

		if engine.Exhausted() {
			fmt.Println()
			fmt.Println("You should be arriving now. Take care!")
			return nil
		}

		select {
		case <-ticker.C:
			engine.Tick()
		case <-sigChan:
			output.ClearScreen(os.Stdout)
			fmt.Println("Countdown ended.")
			return nil
		}
	}
}

// parseCoordinates parses a LAT:LON argument in decimal degrees.
func parseCoordinates(s string) (*models.Position, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return nil, api.ErrInvalidFormat("coordinates", "LAT:LON (e.g., 35.691:139.701)")
	}

	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	return &models.Position{Lat: lat, Lng: lon}, nil
}

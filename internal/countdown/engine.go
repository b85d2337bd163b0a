// Package countdown implements the timer that owns the "time remaining"
// value. The engine only does bookkeeping; scheduling the periodic Tick is
// the caller's job, so ticks are never blocked by in-flight fetches.
package countdown

import "fmt"

// Supported tick resolutions in milliseconds.
const (
	ResolutionCoarse = 1000
	ResolutionFine   = 10
)

// State of the engine.
type State int

const (
	Stopped State = iota
	Running
)

// Engine is a finite-state countdown timer. remaining never goes negative
// and never exceeds the value set by the last Start.
type Engine struct {
	state           State
	remainingMillis int64
	resolution      int64
}

// New returns a stopped engine.
func New() *Engine {
	return &Engine{state: Stopped, resolution: ResolutionCoarse}
}

// Start arms the countdown. A Start while running restarts from the new
// value. Non-positive or unsupported resolutions fall back to coarse.
func (e *Engine) Start(initialMillis int64, tickResolutionMillis int64) {
	if initialMillis < 0 {
		initialMillis = 0
	}
	if tickResolutionMillis != ResolutionFine && tickResolutionMillis != ResolutionCoarse {
		tickResolutionMillis = ResolutionCoarse
	}
	e.state = Running
	e.remainingMillis = initialMillis
	e.resolution = tickResolutionMillis
}

// Tick decrements the remaining time by one resolution step. On reaching
// zero the engine stops decrementing but stays in the Running display state
// until an explicit Reset.
func (e *Engine) Tick() {
	if e.state != Running {
		return
	}
	e.remainingMillis -= e.resolution
	if e.remainingMillis < 0 {
		e.remainingMillis = 0
	}
}

// Reset returns the engine to Stopped and clears the remaining value.
func (e *Engine) Reset() {
	e.state = Stopped
	e.remainingMillis = 0
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Running reports whether the engine is in the Running display state.
func (e *Engine) Running() bool {
	return e.state == Running
}

// Remaining returns the remaining milliseconds. Zero when stopped.
func (e *Engine) Remaining() int64 {
	if e.state != Running {
		return 0
	}
	return e.remainingMillis
}

// Resolution returns the active tick resolution in milliseconds.
func (e *Engine) Resolution() int64 {
	return e.resolution
}

// Exhausted reports whether a running countdown has reached zero.
func (e *Engine) Exhausted() bool {
	return e.state == Running && e.remainingMillis == 0
}

// Display formats the engine's own remaining value.
func (e *Engine) Display() string {
	return Format(e.Remaining(), e.resolution)
}

// Format renders a remaining value as M:SS, or M:SS:CC at fine resolution.
// Negative input renders as the zero display, never a negative time.
func Format(remainingMillis int64, tickResolutionMillis int64) string {
	if remainingMillis < 0 {
		remainingMillis = 0
	}
	totalSeconds := remainingMillis / 1000
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60

	if tickResolutionMillis == ResolutionFine {
		centis := (remainingMillis % 1000) / 10
		return fmt.Sprintf("%d:%02d:%02d", minutes, seconds, centis)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

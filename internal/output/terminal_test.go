package output

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/ibs-relief/relimap-cli/internal/testutil"
)

func TestClearScreen(t *testing.T) {
	var buf bytes.Buffer
	ClearScreen(&buf)

	output := buf.String()
	// Should contain ANSI escape sequences for clear screen and move cursor
	testutil.AssertContains(t, output, "\033[2J")
	testutil.AssertContains(t, output, "\033[H")
}

func TestHideCursor(t *testing.T) {
	var buf bytes.Buffer
	HideCursor(&buf)

	testutil.AssertContains(t, buf.String(), "\033[?25l")
}

func TestShowCursor(t *testing.T) {
	var buf bytes.Buffer
	ShowCursor(&buf)

	testutil.AssertContains(t, buf.String(), "\033[?25h")
}

func TestSetupSignalHandler(t *testing.T) {
	sigChan := SetupSignalHandler()

	testutil.AssertTrue(t, sigChan != nil)

	// Channel starts empty
	select {
	case <-sigChan:
		t.Error("channel should be empty initially")
	case <-time.After(10 * time.Millisecond):
	}

	go func() {
		sigChan <- os.Interrupt
	}()

	select {
	case sig := <-sigChan:
		testutil.AssertEqual(t, sig, os.Interrupt)
	case <-time.After(100 * time.Millisecond):
		t.Error("should have received signal")
	}
}

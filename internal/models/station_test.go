package models

import (
	"testing"

	"github.com/ibs-relief/relimap-cli/internal/testutil"
)

func TestStation_DisplayName(t *testing.T) {
	s := Station{Name: "新宿", EnglishName: "Shinjuku"}
	testutil.AssertEqual(t, s.DisplayName(), "Shinjuku")

	s.EnglishName = ""
	testutil.AssertEqual(t, s.DisplayName(), "新宿")
}

func TestGuidanceResponse_ToGuidance(t *testing.T) {
	resp := GuidanceResponse{
		Message:    "Hang in there.",
		Steps:      []string{"Walk to the gate.", "Take the stairs."},
		ToiletInfo: "Inside the gate",
		Minutes:    7.5,
	}

	g := resp.ToGuidance()
	testutil.AssertEqual(t, g.Message, "Hang in there.")
	testutil.AssertLen(t, g.Steps, 2)
	testutil.AssertEqual(t, g.ToiletInfo, "Inside the gate")
	testutil.AssertFloatEqual(t, g.Minutes, 7.5, 0.001)
}

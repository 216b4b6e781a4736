package ui

import (
	"strings"
	"testing"

	"github.com/umi-app/umi/internal/model"
)

func TestWeekGridEmpty(t *testing.T) {
	grid := NewWeekGrid(NewDisplayContextWithWidth(120), nil)
	out := grid.Render()
	if !strings.Contains(out, "nothing scheduled yet") {
		t.Fatalf("expected empty hint, got %q", out)
	}
}

func TestWeekGridRendersBlocks(t *testing.T) {
	items := []model.ScheduleItem{
		{ID: 1, ObjectName: "Study", Day: model.Mon, Time: "09:00", Duration: 4},
		{ID: 2, ObjectName: "Gym", Day: model.Wed, Time: "10:00", Duration: 2},
	}
	grid := NewWeekGrid(NewDisplayContextWithWidth(120), items)
	out := grid.Render()

	for _, want := range []string{"Study", "Gym", "Mon", "Sun", "09:00", ContinuationMark} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}

	// The window is clipped to the occupied hours, not the whole day.
	if strings.Contains(out, "00:00") {
		t.Errorf("expected grid to start at the first occupied hour\n%s", out)
	}
	if strings.Contains(out, "23:00") {
		t.Errorf("expected grid to end at the last occupied hour\n%s", out)
	}
}

func TestWeekGridTruncatesLongNames(t *testing.T) {
	items := []model.ScheduleItem{
		{ID: 1, ObjectName: strings.Repeat("x", 60), Day: model.Fri, Time: "12:00", Duration: 1},
	}
	grid := NewWeekGrid(NewDisplayContextWithWidth(80), items)
	out := grid.Render()
	if strings.Contains(out, strings.Repeat("x", 30)) {
		t.Errorf("expected long name to be truncated\n%s", out)
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"hello wonderful world", 9, "hello..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := TruncateWithEllipsis(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

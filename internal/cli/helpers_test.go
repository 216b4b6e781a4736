package cli

import (
	"testing"

	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/schedule"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{" 42 ", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := parseID(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseID(%q) expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseID(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseID(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		in      string
		want    model.Day
		wantErr bool
	}{
		{"mon", model.Mon, false},
		{"Mon", model.Mon, false},
		{"monday", model.Mon, false},
		{"SUNDAY", model.Sun, false},
		{" fri ", model.Fri, false},
		{"m", "", true},
		{"mondayy", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		got, err := parseDay(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseDay(%q) expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDay(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseDay(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestScheduleErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{schedule.ErrConflict, ErrScheduleConflict},
		{schedule.ErrDurationNotSet, ErrDurationNotSet},
		{schedule.ErrInvalidTime, ErrInvalidTime},
		{schedule.ErrInvalidDay, ErrInvalidDay},
		{schedule.ErrInvalidDuration, ErrInvalidDuration},
	}
	for _, tc := range tests {
		if got := scheduleErrorCode(tc.err); got != tc.want {
			t.Errorf("scheduleErrorCode(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

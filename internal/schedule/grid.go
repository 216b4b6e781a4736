// Package schedule implements the weekly time grid: 7 day tracks of 96
// fifteen-minute slots, and the conflict checks gating every mutation.
package schedule

import (
	"fmt"

	"github.com/umi-app/umi/internal/model"
)

const (
	// SlotMinutes is the grid granularity.
	SlotMinutes = 15
	// SlotsPerDay is the number of slots in one day track (00:00..23:45).
	SlotsPerDay = 24 * 60 / SlotMinutes
)

// SlotIndex converts an "HH:MM" label to its slot index in [0, SlotsPerDay).
// Labels must be zero-padded and aligned to 15 minutes.
func SlotIndex(label string) (int, error) {
	if len(label) != 5 || label[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, label)
	}

	hour, ok1 := twoDigits(label[0], label[1])
	minute, ok2 := twoDigits(label[3], label[4])
	if !ok1 || !ok2 || hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, label)
	}
	if minute%SlotMinutes != 0 {
		return 0, fmt.Errorf("%w: %q is not aligned to %d minutes", ErrInvalidTime, label, SlotMinutes)
	}

	return hour*4 + minute/SlotMinutes, nil
}

// SlotLabel is the inverse of SlotIndex. Out-of-range slots are clamped
// into the day.
func SlotLabel(slot int) string {
	if slot < 0 {
		slot = 0
	}
	if slot >= SlotsPerDay {
		slot = SlotsPerDay - 1
	}
	minutes := slot * SlotMinutes
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// Occupancy reports which item covers a slot and where in the item's run
// the slot falls. Interior and last slots are rendered absorbed into the
// first.
type Occupancy struct {
	Item  model.ScheduleItem
	First bool
	Last  bool
}

// Interior reports whether the slot is strictly inside the item's run.
func (o Occupancy) Interior() bool {
	return !o.First && !o.Last
}

// OccupantAt scans items for the one whose run covers (day, slot).
// Items with an unparseable time label never match.
func OccupantAt(items []model.ScheduleItem, day model.Day, slot int) (Occupancy, bool) {
	for _, item := range items {
		if item.Day != day {
			continue
		}
		start, err := SlotIndex(item.Time)
		if err != nil {
			continue
		}
		duration := item.Duration
		if duration < 1 {
			duration = 1
		}
		if slot >= start && slot < start+duration {
			return Occupancy{
				Item:  item,
				First: slot == start,
				Last:  slot == start+duration-1,
			}, true
		}
	}
	return Occupancy{}, false
}

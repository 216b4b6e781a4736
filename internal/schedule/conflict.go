package schedule

import (
	"errors"
	"fmt"

	"github.com/umi-app/umi/internal/model"
)

var (
	// ErrInvalidTime indicates a malformed or misaligned "HH:MM" label.
	ErrInvalidTime = errors.New("invalid time label")
	// ErrInvalidDay indicates an unknown weekday value.
	ErrInvalidDay = errors.New("invalid day")
	// ErrInvalidDuration indicates a duration outside [1, SlotsPerDay].
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrDurationNotSet indicates a zero duration on placement: the user
	// never picked a length, which is reported distinctly from a conflict.
	ErrDurationNotSet = errors.New("duration not set")
	// ErrConflict indicates the requested range overlaps an existing item
	// (or runs past the end of the day).
	ErrConflict = errors.New("schedule conflict")
)

// IsValidation reports whether err is an input defect rather than a
// data-dependent conflict.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidTime) ||
		errors.Is(err, ErrInvalidDay) ||
		errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrDurationNotSet)
}

// HasConflict reports whether placing a run of duration slots starting at
// startSlot on day would overlap any item in items other than excludeID.
// A range running past the last slot of the day is a conflict (days do
// not wrap). Pass excludeID 0 to exclude nothing.
//
// Items must all belong to one conflict scope; the caller loads them per
// group. Linear scan: at most 96 slots per day track, so no interval
// structure is warranted.
func HasConflict(items []model.ScheduleItem, day model.Day, startSlot, duration int, excludeID int64) bool {
	if startSlot < 0 || duration < 1 {
		return true
	}
	if startSlot+duration > SlotsPerDay {
		return true
	}

	end := startSlot + duration
	for _, item := range items {
		if item.ID == excludeID && excludeID != 0 {
			continue
		}
		if item.Day != day {
			continue
		}
		itemStart, err := SlotIndex(item.Time)
		if err != nil {
			continue
		}
		itemDuration := item.Duration
		if itemDuration < 1 {
			itemDuration = 1
		}
		if startSlot < itemStart+itemDuration && itemStart < end {
			return true
		}
	}
	return false
}

// CheckPlacement validates placing item among items (one conflict scope).
// Validation errors come before any conflict check; both come before any
// write the caller would issue.
func CheckPlacement(items []model.ScheduleItem, item model.ScheduleItem) error {
	return check(items, item.Day, item.Time, item.Duration, 0, true)
}

// CheckMove validates relocating the item with excludeID to (day, time),
// keeping its duration. The item is excluded from the overlap scan because
// it legitimately occupies the region it is leaving; without the exclusion
// a move overlapping its own old range would falsely conflict.
func CheckMove(items []model.ScheduleItem, excludeID int64, day model.Day, time string, duration int) error {
	return check(items, day, time, duration, excludeID, false)
}

// CheckResize validates changing the item's duration in place.
func CheckResize(items []model.ScheduleItem, item model.ScheduleItem, newDuration int) error {
	return check(items, item.Day, item.Time, newDuration, item.ID, false)
}

func check(items []model.ScheduleItem, day model.Day, time string, duration int, excludeID int64, placing bool) error {
	if !day.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	start, err := SlotIndex(time)
	if err != nil {
		return err
	}
	if duration == 0 && placing {
		return ErrDurationNotSet
	}
	if duration < 1 || duration > SlotsPerDay {
		return fmt.Errorf("%w: %d blocks", ErrInvalidDuration, duration)
	}
	if HasConflict(items, day, start, duration, excludeID) {
		return fmt.Errorf("%w: %s %s for %d blocks", ErrConflict, day, time, duration)
	}
	return nil
}

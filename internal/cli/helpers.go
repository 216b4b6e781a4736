package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/planner"
	"github.com/umi-app/umi/internal/schedule"
	"github.com/umi-app/umi/internal/store"
)

// openPlanner opens the resolved planner's store and wraps it in the
// mutation facade. Caller is responsible for calling Close on the store.
func openPlanner() (*planner.Planner, *store.Store, error) {
	st, err := store.Open(getPlannerPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open planner database: %w", err)
	}
	return planner.New(st), st, nil
}

// parseID parses a decimal record ID argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// parseDay parses a day argument. Accepts the short form used everywhere
// ("mon".."sun") as well as full names.
func parseDay(arg string) (model.Day, error) {
	v := strings.ToLower(strings.TrimSpace(arg))
	for _, day := range model.Days {
		if v == strings.ToLower(string(day)) || v == strings.ToLower(fullDayName(day)) {
			return day, nil
		}
	}
	return "", fmt.Errorf("invalid day %q (use mon..sun)", arg)
}

func fullDayName(day model.Day) string {
	switch day {
	case model.Mon:
		return "Monday"
	case model.Tue:
		return "Tuesday"
	case model.Wed:
		return "Wednesday"
	case model.Thu:
		return "Thursday"
	case model.Fri:
		return "Friday"
	case model.Sat:
		return "Saturday"
	case model.Sun:
		return "Sunday"
	}
	return string(day)
}

// scheduleErrorCode maps schedule rule violations to stable error codes.
func scheduleErrorCode(err error) string {
	switch {
	case errors.Is(err, schedule.ErrConflict):
		return ErrScheduleConflict
	case errors.Is(err, schedule.ErrDurationNotSet):
		return ErrDurationNotSet
	case errors.Is(err, schedule.ErrInvalidTime):
		return ErrInvalidTime
	case errors.Is(err, schedule.ErrInvalidDay):
		return ErrInvalidDay
	case errors.Is(err, schedule.ErrInvalidDuration):
		return ErrInvalidDuration
	default:
		return ErrInternal
	}
}

// scheduleErrorSuggestion gives the short fix hint for a schedule error.
func scheduleErrorSuggestion(err error) string {
	switch {
	case errors.Is(err, schedule.ErrConflict):
		return "Pick a free slot or move the other item first"
	case errors.Is(err, schedule.ErrDurationNotSet):
		return "Set a duration first: umi object duration <id> <blocks>"
	case errors.Is(err, schedule.ErrInvalidTime):
		return "Times are HH:MM on a 15-minute grid, e.g. 09:15"
	default:
		return ""
	}
}

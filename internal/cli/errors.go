// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Planner errors
	ErrPlannerNotFound     = "PLANNER_NOT_FOUND"
	ErrPlannerNotSpecified = "PLANNER_NOT_SPECIFIED"
	ErrConfigInvalid       = "CONFIG_INVALID"

	// Record errors
	ErrGroupNotFound      = "GROUP_NOT_FOUND"
	ErrObjectNotFound     = "OBJECT_NOT_FOUND"
	ErrFieldNotFound      = "FIELD_NOT_FOUND"
	ErrAttachmentNotFound = "ATTACHMENT_NOT_FOUND"
	ErrTodoNotFound       = "TODO_NOT_FOUND"
	ErrPageNotFound       = "PAGE_NOT_FOUND"
	ErrItemNotFound       = "SCHEDULE_ITEM_NOT_FOUND"

	// Schedule errors
	ErrScheduleConflict = "SCHEDULE_CONFLICT"
	ErrDurationNotSet   = "DURATION_NOT_SET"
	ErrInvalidTime      = "INVALID_TIME"
	ErrInvalidDay       = "INVALID_DAY"
	ErrInvalidDuration  = "INVALID_DURATION"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"
	ErrImportInvalid  = "IMPORT_INVALID"

	// Database errors
	ErrDatabaseError = "DATABASE_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnSkippedPlacement = "SKIPPED_PLACEMENT"
	WarnSkippedField     = "SKIPPED_FIELD"
	WarnNoOp             = "NO_OP"
)

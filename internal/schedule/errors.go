package schedule

import "errors"

// Domain errors for the schedule package.
var (
	// ErrTaskNotFound is returned when a scheduled task ID does not exist.
	ErrTaskNotFound = errors.New("schedule: task not found")

	// ErrTriggerNotFound is returned when a trigger ID does not exist.
	ErrTriggerNotFound = errors.New("schedule: trigger not found")

	// ErrMalformedAction is returned when an action cannot be resolved to a
	// dispatchable command: unknown command name, missing argument, or an
	// argument where none is accepted. The task is skipped; the scheduler
	// keeps ticking.
	ErrMalformedAction = errors.New("schedule: malformed action")

	// ErrInvalidTime is returned when a time-of-day value does not parse as
	// "HH:MM" or is out of range.
	ErrInvalidTime = errors.New("schedule: invalid time of day")

	// ErrAlreadyRunning is returned when starting a scheduler that is
	// already running.
	ErrAlreadyRunning = errors.New("schedule: scheduler already running")
)

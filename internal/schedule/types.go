package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CommandName identifies a dispatchable hub command. The set is closed:
// scheduled actions resolve against these names through a fixed dispatch
// table, never through evaluation of stored text.
type CommandName string

// Command constants.
const (
	CommandTurnOn         CommandName = "turn_on"
	CommandTurnOff        CommandName = "turn_off"
	CommandSetTemperature CommandName = "set_temperature"
	CommandLock           CommandName = "lock"
	CommandUnlock         CommandName = "unlock"
)

// AllCommands returns all valid command names.
func AllCommands() []CommandName {
	return []CommandName{
		CommandTurnOn, CommandTurnOff, CommandSetTemperature,
		CommandLock, CommandUnlock,
	}
}

// Action is a command descriptor: a command name plus its optional typed
// argument. Only set_temperature takes an argument.
type Action struct {
	Command CommandName `json:"command"`
	Value   *int        `json:"value,omitempty"`
}

// Validate checks the action against the dispatch table's expectations.
func (a Action) Validate() error {
	switch a.Command {
	case CommandSetTemperature:
		if a.Value == nil {
			return fmt.Errorf("%w: %s requires a value", ErrMalformedAction, a.Command)
		}
	case CommandTurnOn, CommandTurnOff, CommandLock, CommandUnlock:
		if a.Value != nil {
			return fmt.Errorf("%w: %s takes no value", ErrMalformedAction, a.Command)
		}
	default:
		return fmt.Errorf("%w: unknown command %q", ErrMalformedAction, a.Command)
	}
	return nil
}

// String returns a compact human-readable form, e.g. "set_temperature(72)".
func (a Action) String() string {
	if a.Value != nil {
		return fmt.Sprintf("%s(%d)", a.Command, *a.Value)
	}
	return string(a.Command)
}

// TimeOfDay is a wall-clock trigger time with minute resolution.
// No timezone or calendar semantics are attached; it matches whatever the
// scheduler's clock reports.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParseTimeOfDay parses "HH:MM" (24-hour, zero-padded) into a TimeOfDay.
// The whole input must match; trailing text is rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
	}

	t := TimeOfDay{
		Hour:   int(s[0]-'0')*10 + int(s[1]-'0'),
		Minute: int(s[3]-'0')*10 + int(s[4]-'0'),
	}
	if t.Hour > 23 || t.Minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return t, nil
}

// TimeOfDayOf truncates a time.Time to its time-of-day component.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// String returns the "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Task is a scheduled command: run Action against DeviceID when the clock
// reads At. Tasks are immutable once created and persist until explicitly
// deleted.
type Task struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"device_id"`
	At        TimeOfDay `json:"at"`
	Action    Action    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

// Trigger is a stored condition→action pair. Condition is opaque text;
// nothing in the hub evaluates it.
type Trigger struct {
	ID        string    `json:"id"`
	Condition string    `json:"condition"`
	DeviceID  string    `json:"device_id"`
	Action    Action    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerateID creates a new UUID for a task or trigger.
func GenerateID() string {
	return uuid.New().String()
}

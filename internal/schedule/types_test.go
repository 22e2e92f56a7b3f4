package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{input: "06:00", want: TimeOfDay{Hour: 6}},
		{input: "00:00", want: TimeOfDay{}},
		{input: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "six", wantErr: true},
		{input: "", wantErr: true},
		{input: "06:00 and change", wantErr: true},
		{input: "06:000", wantErr: true},
		{input: "6:00", wantErr: true},
		{input: "+1:30", wantErr: true},
		{input: "06-00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTime) {
					t.Fatalf("ParseTimeOfDay(%q) error = %v, want ErrInvalidTime", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func TestTimeOfDayOf(t *testing.T) {
	at := time.Date(2026, 8, 31, 6, 0, 30, 0, time.UTC)
	if got := TimeOfDayOf(at); got != (TimeOfDay{Hour: 6}) {
		t.Errorf("TimeOfDayOf() = %+v, want 06:00", got)
	}
}

func TestActionValidate(t *testing.T) {
	value := 72

	tests := []struct {
		name    string
		action  Action
		wantErr bool
	}{
		{name: "turn_on", action: Action{Command: CommandTurnOn}},
		{name: "turn_off", action: Action{Command: CommandTurnOff}},
		{name: "lock", action: Action{Command: CommandLock}},
		{name: "unlock", action: Action{Command: CommandUnlock}},
		{name: "set_temperature with value", action: Action{Command: CommandSetTemperature, Value: &value}},
		{name: "set_temperature missing value", action: Action{Command: CommandSetTemperature}, wantErr: true},
		{name: "turn_on with stray value", action: Action{Command: CommandTurnOn, Value: &value}, wantErr: true},
		{name: "unknown command", action: Action{Command: "reboot"}, wantErr: true},
		{name: "empty command", action: Action{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.action.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedAction) {
					t.Fatalf("Validate() error = %v, want ErrMalformedAction", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	value := 72
	if got := (Action{Command: CommandTurnOn}).String(); got != "turn_on" {
		t.Errorf("String() = %q", got)
	}
	if got := (Action{Command: CommandSetTemperature, Value: &value}).String(); got != "set_temperature(72)" {
		t.Errorf("String() = %q", got)
	}
}

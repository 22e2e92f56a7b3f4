package device

import "fmt"

// Light is a switchable light. Default state is off.
type Light struct {
	base
	power PowerState
}

// NewLight creates a Light in the off state.
func NewLight(id string) *Light {
	return &Light{
		base:  newBase(id, KindLight),
		power: PowerOff,
	}
}

// TurnOn switches the light on and notifies subscribers.
func (l *Light) TurnOn() {
	l.setPower(PowerOn)
}

// TurnOff switches the light off and notifies subscribers.
func (l *Light) TurnOff() {
	l.setPower(PowerOff)
}

func (l *Light) setPower(p PowerState) {
	l.mu.Lock()
	l.power = p
	l.mu.Unlock()

	verb := "on"
	if p == PowerOff {
		verb = "off"
	}
	l.notify(fmt.Sprintf("Light is turned %s (%s)", verb, p))
}

// Power returns the current power state.
func (l *Light) Power() PowerState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.power
}

// StatusReport returns e.g. "Light 1 is off.".
func (l *Light) StatusReport() string {
	return fmt.Sprintf("Light %s is %s.", l.id, l.Power())
}

package device

import "fmt"

// defaultTemperature is the setpoint a new thermostat starts at.
const defaultTemperature = 70

// Thermostat holds a temperature setpoint in whole degrees.
// There is no on/off capability; the setpoint is its only state.
type Thermostat struct {
	base
	temperature int
}

// NewThermostat creates a Thermostat at the default setpoint.
func NewThermostat(id string) *Thermostat {
	return &Thermostat{
		base:        newBase(id, KindThermostat),
		temperature: defaultTemperature,
	}
}

// SetTemperature updates the setpoint and notifies subscribers.
// Values outside [MinTemperature, MaxTemperature] are rejected with
// ErrTemperatureOutOfRange; the setpoint is unchanged and nothing is
// notified.
func (t *Thermostat) SetTemperature(value int) error {
	if value < MinTemperature || value > MaxTemperature {
		return fmt.Errorf("%w: %d (accepted %d-%d)",
			ErrTemperatureOutOfRange, value, MinTemperature, MaxTemperature)
	}

	t.mu.Lock()
	t.temperature = value
	t.mu.Unlock()

	t.notifyDegrees(fmt.Sprintf("Thermostat temperature set to %d degrees", value), value)
	return nil
}

// Temperature returns the current setpoint.
func (t *Thermostat) Temperature() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.temperature
}

// StatusReport returns e.g. "Thermostat is set to 70 degrees.".
func (t *Thermostat) StatusReport() string {
	return fmt.Sprintf("Thermostat is set to %d degrees.", t.Temperature())
}

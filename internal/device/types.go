package device

import "time"

// Kind represents the specific kind of device. It is fixed at creation and
// never changes for the lifetime of the device.
type Kind string

// Kind constants.
const (
	KindLight      Kind = "light"
	KindThermostat Kind = "thermostat"
	KindDoorLock   Kind = "door_lock"
)

// AllKinds returns all valid device kinds.
func AllKinds() []Kind {
	return []Kind{KindLight, KindThermostat, KindDoorLock}
}

// ValidKind reports whether k is a recognised device kind.
func ValidKind(k Kind) bool {
	switch k {
	case KindLight, KindThermostat, KindDoorLock:
		return true
	default:
		return false
	}
}

// Capability represents a named operation a device kind supports.
type Capability string

// Capability constants.
const (
	// CapabilityPower covers TurnOn/TurnOff.
	CapabilityPower Capability = "power"

	// CapabilityTemperature covers SetTemperature.
	CapabilityTemperature Capability = "temperature"

	// CapabilityLock covers Lock/Unlock.
	CapabilityLock Capability = "lock"
)

// AllCapabilities returns all valid capability values.
func AllCapabilities() []Capability {
	return []Capability{CapabilityPower, CapabilityTemperature, CapabilityLock}
}

// kindCapabilities is the fixed kind→capability table. Adding a device kind
// means adding a row here; the proxy's checks never change.
var kindCapabilities = map[Kind][]Capability{
	KindLight:      {CapabilityPower},
	KindThermostat: {CapabilityTemperature},
	KindDoorLock:   {CapabilityLock},
}

// Capabilities returns the capability set for a kind. The returned slice is
// a copy; callers may modify it freely.
func Capabilities(k Kind) []Capability {
	caps := kindCapabilities[k]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// PowerState is the on/off state of a light.
type PowerState string

// PowerState constants.
const (
	PowerOn  PowerState = "on"
	PowerOff PowerState = "off"
)

// LockState is the locked/unlocked state of a door lock.
type LockState string

// LockState constants.
const (
	Locked   LockState = "locked"
	Unlocked LockState = "unlocked"
)

// Thermostat setpoint bounds (degrees). The original hub declared no bounds;
// values outside this range are rejected, not clamped.
const (
	MinTemperature = 40
	MaxTemperature = 100
)

// Event is a state-change notification delivered to a device's observers.
type Event struct {
	DeviceID string `json:"device_id"`
	Kind     Kind   `json:"kind"`
	Message  string `json:"message"`

	// Degrees is the new setpoint on thermostat events, nil for every
	// other kind. Consumers that record numeric series read it here
	// instead of parsing Message.
	Degrees *int `json:"degrees,omitempty"`

	At time.Time `json:"at"`
}

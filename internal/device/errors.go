package device

import "errors"

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrUnsupportedCapability) {
//	    // handle capability mismatch
//	}
var (
	// ErrInvalidID is returned when a device ID is empty.
	ErrInvalidID = errors.New("device: invalid id")

	// ErrInvalidKind is returned when a device kind is not recognised.
	// This is the only hard construction error; callers should abort the
	// single create call, not the hub.
	ErrInvalidKind = errors.New("device: invalid kind")

	// ErrUnsupportedCapability is returned when an operation is not valid
	// for the device's capability set. The device is left untouched and no
	// notification is emitted.
	ErrUnsupportedCapability = errors.New("device: unsupported capability")

	// ErrObserverNotSubscribed is returned when unsubscribing an observer
	// that is not on the device's subscriber list.
	ErrObserverNotSubscribed = errors.New("device: observer not subscribed")

	// ErrTemperatureOutOfRange is returned when a thermostat setpoint falls
	// outside the accepted range.
	ErrTemperatureOutOfRange = errors.New("device: temperature out of range")

	// ErrInvalidStatus is returned when an initial status value is not valid
	// for the device kind (e.g. a light status other than "on"/"off").
	ErrInvalidStatus = errors.New("device: invalid status")
)

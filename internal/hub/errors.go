package hub

import "errors"

var (
	// ErrDeviceExists indicates a registration with an ID already in use.
	ErrDeviceExists = errors.New("hub: device already registered")

	// ErrDeviceNotFound indicates the requested device is not registered.
	ErrDeviceNotFound = errors.New("hub: device not found")

	// ErrSchedulingDisabled indicates the hub was built without a schedule
	// store.
	ErrSchedulingDisabled = errors.New("hub: scheduling disabled")
)

// Package device models the controllable devices known to the hub.
//
// Each device variant (Light, Thermostat, DoorLock) is a small state machine
// behind the common Device interface. A device's kind is fixed at creation;
// only its kind-specific state mutates. What a device can do is expressed as
// a capability set queried via Supports, so callers never inspect concrete
// types.
//
// Devices carry their own subscriber list: every successful mutation emits an
// Event to all subscribed observers, synchronously and in subscription order,
// before the mutator returns.
//
// Proxy is the access-mediation wrapper. It forwards an operation only when
// the wrapped device's capability set allows it; a mismatch is a reported,
// recoverable error, never a panic.
package device

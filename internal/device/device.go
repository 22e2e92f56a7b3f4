package device

import (
	"fmt"
	"sync"
	"time"
)

// Device is the common surface every variant exposes.
//
// Kind-specific mutators live on the concrete types (Light, Thermostat,
// DoorLock) and on the capability interfaces below; Supports answers whether
// a given operation is valid without inspecting the concrete type.
type Device interface {
	// ID returns the caller-assigned identifier, unique within a hub.
	ID() string

	// Kind returns the device kind, fixed at creation.
	Kind() Kind

	// Supports reports whether the device's kind carries the capability.
	Supports(c Capability) bool

	// StatusReport returns a one-line human-readable state summary.
	// It is pure: no side effects, no notifications.
	StatusReport() string

	// Subscribe appends an observer to the subscriber list. No
	// deduplication: subscribing twice yields two notifications per event.
	Subscribe(o Observer)

	// Unsubscribe removes the first matching observer, or returns
	// ErrObserverNotSubscribed leaving the list unchanged.
	Unsubscribe(o Observer) error
}

// PowerController is implemented by devices with CapabilityPower.
type PowerController interface {
	TurnOn()
	TurnOff()
}

// TemperatureController is implemented by devices with CapabilityTemperature.
type TemperatureController interface {
	SetTemperature(value int) error
}

// LockController is implemented by devices with CapabilityLock.
type LockController interface {
	Lock()
	Unlock()
}

// New constructs a device of the given kind in its default state.
// Returns ErrInvalidID for an empty id and ErrInvalidKind for an
// unrecognised kind.
func New(id string, kind Kind) (Device, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	switch kind {
	case KindLight:
		return NewLight(id), nil
	case KindThermostat:
		return NewThermostat(id), nil
	case KindDoorLock:
		return NewDoorLock(id), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
}

// base carries the identity and subscriber list shared by all variants.
// The mutex guards both the variant's state field and the observer list;
// variants lock it around every mutation and read.
type base struct {
	id   string
	kind Kind

	mu        sync.Mutex
	observers []Observer
}

func newBase(id string, kind Kind) base {
	return base{id: id, kind: kind}
}

// ID returns the device identifier.
func (b *base) ID() string { return b.id }

// Kind returns the device kind.
func (b *base) Kind() Kind { return b.kind }

// Supports reports whether the device kind carries the capability.
func (b *base) Supports(c Capability) bool {
	for _, cap := range kindCapabilities[b.kind] {
		if cap == c {
			return true
		}
	}
	return false
}

// Subscribe appends an observer to the subscriber list.
func (b *base) Subscribe(o Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers = append(b.observers, o)
}

// Unsubscribe removes the first matching observer.
func (b *base) Unsubscribe(o Observer) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, existing := range b.observers {
		if existing == o {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: device %q", ErrObserverNotSubscribed, b.id)
}

// notify delivers a state-change event to every subscriber in subscription
// order.
func (b *base) notify(message string) {
	b.notifyEvent(Event{
		DeviceID: b.id,
		Kind:     b.kind,
		Message:  message,
		At:       time.Now().UTC(),
	})
}

// notifyDegrees is notify with the new setpoint attached to the event.
func (b *base) notifyDegrees(message string, degrees int) {
	b.notifyEvent(Event{
		DeviceID: b.id,
		Kind:     b.kind,
		Message:  message,
		Degrees:  &degrees,
		At:       time.Now().UTC(),
	})
}

// notifyEvent fans an event out to every subscriber. The observer list is
// snapshotted under the lock and delivery happens outside it, so a slow
// observer never blocks other device operations.
func (b *base) notifyEvent(event Event) {
	b.mu.Lock()
	observers := make([]Observer, len(b.observers))
	copy(observers, b.observers)
	b.mu.Unlock()

	for _, o := range observers {
		deliver(o, event)
	}
}

// deliver invokes a single observer, isolating panics so one failing
// subscriber cannot block delivery to the rest.
func deliver(o Observer, e Event) {
	defer func() {
		_ = recover()
	}()
	o.Notify(e)
}

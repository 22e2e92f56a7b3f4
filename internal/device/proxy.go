package device

import "fmt"

// Proxy mediates access to a single device.
//
// Every operation is gated on the wrapped device's capability set before it
// is forwarded; a mismatch returns ErrUnsupportedCapability without mutating
// the device or notifying its subscribers. Capability mismatch is a reported,
// recoverable condition — the hub keeps running.
//
// The capability check queries Supports rather than inspecting the concrete
// type, so new device kinds only touch the kind→capability table.
type Proxy struct {
	device Device
}

// NewProxy wraps a device in an access proxy.
func NewProxy(d Device) *Proxy {
	return &Proxy{device: d}
}

// ID returns the wrapped device's identifier.
func (p *Proxy) ID() string { return p.device.ID() }

// Kind returns the wrapped device's kind.
func (p *Proxy) Kind() Kind { return p.device.Kind() }

// Supports reports whether the wrapped device carries the capability.
func (p *Proxy) Supports(c Capability) bool { return p.device.Supports(c) }

// TurnOn switches the device on, if it supports power control.
func (p *Proxy) TurnOn() error {
	if err := p.check(CapabilityPower); err != nil {
		return err
	}
	p.device.(PowerController).TurnOn()
	return nil
}

// TurnOff switches the device off, if it supports power control.
func (p *Proxy) TurnOff() error {
	if err := p.check(CapabilityPower); err != nil {
		return err
	}
	p.device.(PowerController).TurnOff()
	return nil
}

// SetTemperature updates the setpoint, if the device supports temperature
// control. Range validation is the device's own; its error passes through.
func (p *Proxy) SetTemperature(value int) error {
	if err := p.check(CapabilityTemperature); err != nil {
		return err
	}
	return p.device.(TemperatureController).SetTemperature(value)
}

// Lock locks the device, if it supports locking.
func (p *Proxy) Lock() error {
	if err := p.check(CapabilityLock); err != nil {
		return err
	}
	p.device.(LockController).Lock()
	return nil
}

// Unlock unlocks the device, if it supports locking.
func (p *Proxy) Unlock() error {
	if err := p.check(CapabilityLock); err != nil {
		return err
	}
	p.device.(LockController).Unlock()
	return nil
}

// StatusReport always forwards, regardless of kind.
func (p *Proxy) StatusReport() string {
	return p.device.StatusReport()
}

// Subscribe forwards to the wrapped device's subscriber list.
func (p *Proxy) Subscribe(o Observer) {
	p.device.Subscribe(o)
}

// Unsubscribe forwards to the wrapped device's subscriber list.
func (p *Proxy) Unsubscribe(o Observer) error {
	return p.device.Unsubscribe(o)
}

// check returns ErrUnsupportedCapability when the wrapped device's kind does
// not carry the capability.
func (p *Proxy) check(c Capability) error {
	if p.device.Supports(c) {
		return nil
	}
	return fmt.Errorf("%w: %s device %q does not support %s",
		ErrUnsupportedCapability, p.device.Kind(), p.device.ID(), c)
}

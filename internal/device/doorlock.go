package device

import "fmt"

// DoorLock is a lockable door. Default state is locked.
type DoorLock struct {
	base
	state LockState
}

// NewDoorLock creates a DoorLock in the locked state.
func NewDoorLock(id string) *DoorLock {
	return &DoorLock{
		base:  newBase(id, KindDoorLock),
		state: Locked,
	}
}

// Lock locks the door and notifies subscribers.
func (d *DoorLock) Lock() {
	d.setState(Locked)
}

// Unlock unlocks the door and notifies subscribers.
func (d *DoorLock) Unlock() {
	d.setState(Unlocked)
}

func (d *DoorLock) setState(s LockState) {
	d.mu.Lock()
	d.state = s
	d.mu.Unlock()

	d.notify(fmt.Sprintf("Door is %s", s))
}

// State returns the current lock state.
func (d *DoorLock) State() LockState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// StatusReport returns e.g. "Door is locked.".
func (d *DoorLock) StatusReport() string {
	return fmt.Sprintf("Door is %s.", d.State())
}

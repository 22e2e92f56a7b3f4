package device

// Observer receives state-change events from a device it is subscribed to.
//
// Notify is called synchronously from the mutating goroutine, after the state
// change has been applied and before the mutator returns. Implementations
// should return quickly; anything slow (network publishes, history writes)
// belongs behind a buffer or an async client.
type Observer interface {
	Notify(e Event)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(e Event)

// Notify implements Observer.
func (f ObserverFunc) Notify(e Event) { f(e) }

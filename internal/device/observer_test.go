package device

import (
	"errors"
	"testing"
)

func TestSubscribeNoDedup(t *testing.T) {
	light := NewLight("1")
	rec := &recorder{}

	// Subscribing the same observer twice yields two notifications per event.
	light.Subscribe(rec)
	light.Subscribe(rec)

	light.TurnOn()

	if got := len(rec.messages()); got != 2 {
		t.Errorf("got %d notifications, want 2", got)
	}
}

func TestNotificationOrderFollowsSubscriptionOrder(t *testing.T) {
	light := NewLight("1")

	var order []string
	light.Subscribe(ObserverFunc(func(Event) { order = append(order, "first") }))
	light.Subscribe(ObserverFunc(func(Event) { order = append(order, "second") }))
	light.Subscribe(ObserverFunc(func(Event) { order = append(order, "third") }))

	light.TurnOn()

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("delivery order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("delivery order = %v, want %v", order, want)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	light := NewLight("1")
	first := &recorder{}
	second := &recorder{}
	light.Subscribe(first)
	light.Subscribe(second)

	if err := light.Unsubscribe(first); err != nil {
		t.Fatalf("Unsubscribe() error: %v", err)
	}

	light.TurnOn()

	if len(first.messages()) != 0 {
		t.Errorf("unsubscribed observer received %v", first.messages())
	}
	if len(second.messages()) != 1 {
		t.Errorf("remaining observer received %v", second.messages())
	}
}

func TestUnsubscribeNotSubscribed(t *testing.T) {
	light := NewLight("1")
	subscribed := &recorder{}
	stranger := &recorder{}
	light.Subscribe(subscribed)

	err := light.Unsubscribe(stranger)
	if !errors.Is(err, ErrObserverNotSubscribed) {
		t.Fatalf("Unsubscribe() error = %v, want ErrObserverNotSubscribed", err)
	}

	// The subscriber list is unchanged.
	light.TurnOn()
	if len(subscribed.messages()) != 1 {
		t.Errorf("remaining observer received %v", subscribed.messages())
	}
}

func TestUnsubscribeRemovesFirstMatchOnly(t *testing.T) {
	light := NewLight("1")
	rec := &recorder{}
	light.Subscribe(rec)
	light.Subscribe(rec)

	if err := light.Unsubscribe(rec); err != nil {
		t.Fatalf("Unsubscribe() error: %v", err)
	}

	light.TurnOn()
	if got := len(rec.messages()); got != 1 {
		t.Errorf("got %d notifications after removing one of two entries, want 1", got)
	}
}

func TestPanickingObserverDoesNotBlockDelivery(t *testing.T) {
	light := NewLight("1")
	after := &recorder{}

	light.Subscribe(ObserverFunc(func(Event) { panic("broken subscriber") }))
	light.Subscribe(after)

	light.TurnOn()

	if len(after.messages()) != 1 {
		t.Errorf("observer after panicking subscriber received %v", after.messages())
	}
}

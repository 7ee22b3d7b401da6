package session

import "time"

// Observer receives session lifecycle and event notifications. Metrics and
// tracing hook in here.
type Observer interface {
	SessionOpened(id string)
	SessionClosed(id string, lifetime time.Duration)

	// EventStarted is called before a client event is handled. The returned
	// function is called when handling finishes, with the error code or "".
	EventStarted(id, hid, eventType string) (done func(code string))

	ToastDismissed(level string)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) SessionOpened(string)                {}
func (NopObserver) SessionClosed(string, time.Duration) {}
func (NopObserver) ToastDismissed(string)               {}

func (NopObserver) EventStarted(string, string, string) func(string) {
	return func(string) {}
}

// Observers fans notifications out to several observers.
type Observers []Observer

func (o Observers) SessionOpened(id string) {
	for _, ob := range o {
		ob.SessionOpened(id)
	}
}

func (o Observers) SessionClosed(id string, lifetime time.Duration) {
	for _, ob := range o {
		ob.SessionClosed(id, lifetime)
	}
}

func (o Observers) EventStarted(id, hid, eventType string) func(string) {
	dones := make([]func(string), 0, len(o))
	for _, ob := range o {
		dones = append(dones, ob.EventStarted(id, hid, eventType))
	}
	return func(code string) {
		for i := len(dones) - 1; i >= 0; i-- {
			dones[i](code)
		}
	}
}

func (o Observers) ToastDismissed(level string) {
	for _, ob := range o {
		ob.ToastDismissed(level)
	}
}

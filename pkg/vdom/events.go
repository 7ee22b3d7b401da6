package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events. Like every event constructor it takes a
// func() or a func(value string); the session passes the element's current
// value to the latter form.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnPointerEnter handles pointerenter events.
func OnPointerEnter(handler any) EventHandler { return event("pointerenter", handler) }

// OnPointerLeave handles pointerleave events.
func OnPointerLeave(handler any) EventHandler { return event("pointerleave", handler) }

// OnInput handles input events (fired when value changes).
func OnInput(handler any) EventHandler { return event("input", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }

// IsEventName reports whether name is an event the thin client forwards.
func IsEventName(name string) bool {
	switch name {
	case "click", "pointerenter", "pointerleave", "input", "change",
		"focus", "blur", "submit", "keydown":
		return true
	}
	return false
}

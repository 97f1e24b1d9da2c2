// Package events holds the event types shared by DOM hosts and the
// custom element adapter, plus the live event channel a custom element
// class exposes to outside callers.
package events

// Event is a host-agnostic DOM event. Hosts translate it to their native
// representation (a CustomEvent in the browser).
type Event struct {
	Type     string
	Detail   any
	Bubbles  bool
	Composed bool

	defaultPrevented bool
}

// NewEvent creates an event of the given type carrying detail.
func NewEvent(typ string, detail any) *Event {
	return &Event{Type: typ, Detail: detail}
}

// PreventDefault marks the event as canceled.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Listener wraps an event handler. Go funcs are not comparable, so listeners
// are identified by pointer: keep the *Listener to remove it later.
type Listener struct {
	fn func(*Event)
}

// NewListener returns a listener calling fn.
func NewListener(fn func(*Event)) *Listener {
	return &Listener{fn: fn}
}

// Handle invokes the wrapped handler.
func (l *Listener) Handle(ev *Event) {
	if l == nil || l.fn == nil {
		return
	}
	l.fn(ev)
}

// Target is anything events can be dispatched to.
type Target interface {
	// DispatchEvent delivers ev to the listeners registered for ev.Type.
	// It returns false if a listener prevented the default action.
	DispatchEvent(ev *Event) bool
	AddEventListener(typ string, l *Listener)
	RemoveEventListener(typ string, l *Listener)
}

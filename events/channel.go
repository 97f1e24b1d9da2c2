package events

import "sync"

// Channel is the event channel binding of a custom element class: three
// functions (dispatch, add listener, remove listener) bound to whichever
// container currently hosts rendered content. The adapter rebinds it on every
// render, so callers must keep the *Channel and go through it each time rather
// than copy the functions out.
type Channel struct {
	mu       sync.RWMutex
	dispatch func(*Event) bool
	add      func(string, *Listener)
	remove   func(string, *Listener)
}

// Bind points the channel at t.
func (c *Channel) Bind(t Target) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t == nil {
		c.dispatch, c.add, c.remove = nil, nil, nil
		return
	}
	c.dispatch = func(ev *Event) bool { return t.DispatchEvent(ev) }
	c.add = func(typ string, l *Listener) { t.AddEventListener(typ, l) }
	c.remove = func(typ string, l *Listener) { t.RemoveEventListener(typ, l) }
}

// Bound reports whether a render has bound the channel yet.
func (c *Channel) Bound() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dispatch != nil
}

// Dispatch sends ev to the current container. Before the first render there is
// nothing to dispatch to and Dispatch returns false.
func (c *Channel) Dispatch(ev *Event) bool {
	c.mu.RLock()
	fn := c.dispatch
	c.mu.RUnlock()
	if fn == nil {
		return false
	}
	return fn(ev)
}

// AddEventListener registers l on the current container.
func (c *Channel) AddEventListener(typ string, l *Listener) {
	c.mu.RLock()
	fn := c.add
	c.mu.RUnlock()
	if fn != nil {
		fn(typ, l)
	}
}

// RemoveEventListener unregisters l from the current container.
func (c *Channel) RemoveEventListener(typ string, l *Listener) {
	c.mu.RLock()
	fn := c.remove
	c.mu.RUnlock()
	if fn != nil {
		fn(typ, l)
	}
}

package events

// ListenerSet is the listener bookkeeping behind an in-memory Target.
// The zero value is ready to use.
type ListenerSet struct {
	byType map[string][]*Listener
}

// Add registers l for typ. Adding the same listener twice is a no-op,
// matching addEventListener.
func (s *ListenerSet) Add(typ string, l *Listener) {
	if l == nil {
		return
	}
	if s.byType == nil {
		s.byType = make(map[string][]*Listener)
	}
	for _, existing := range s.byType[typ] {
		if existing == l {
			return
		}
	}
	s.byType[typ] = append(s.byType[typ], l)
}

// Remove unregisters l for typ.
func (s *ListenerSet) Remove(typ string, l *Listener) {
	list := s.byType[typ]
	for i, existing := range list {
		if existing == l {
			s.byType[typ] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Len returns the number of listeners registered for typ.
func (s *ListenerSet) Len(typ string) int {
	return len(s.byType[typ])
}

// Dispatch calls every listener registered for ev.Type in registration order.
// Listeners added or removed during dispatch take effect on the next dispatch.
func (s *ListenerSet) Dispatch(ev *Event) bool {
	if ev == nil {
		return true
	}
	list := append([]*Listener(nil), s.byType[ev.Type]...)
	for _, l := range list {
		l.Handle(ev)
	}
	return !ev.DefaultPrevented()
}

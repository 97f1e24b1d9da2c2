package events

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListenerSet_AddIsIdempotent(t *testing.T) {
	var s ListenerSet
	calls := 0
	l := NewListener(func(*Event) { calls++ })

	s.Add("click", l)
	s.Add("click", l)
	s.Dispatch(NewEvent("click", nil))

	if s.Len("click") != 1 {
		t.Errorf("Expected 1 listener, got %d", s.Len("click"))
	}
	if calls != 1 {
		t.Errorf("Expected listener to run once, got %d", calls)
	}
}

func TestListenerSet_DispatchOrderAndRemoval(t *testing.T) {
	var s ListenerSet
	var order []string
	var second *Listener
	first := NewListener(func(*Event) {
		order = append(order, "first")
		s.Remove("click", second)
	})
	second = NewListener(func(*Event) { order = append(order, "second") })
	s.Add("click", first)
	s.Add("click", second)

	s.Dispatch(NewEvent("click", nil))
	s.Dispatch(NewEvent("click", nil))

	// Removal during dispatch takes effect on the next one
	want := []string{"first", "second", "first"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("Dispatch order mismatch (-want +got):\n%s", diff)
	}
}

func TestListenerSet_PreventDefault(t *testing.T) {
	var s ListenerSet
	s.Add("submit", NewListener(func(ev *Event) { ev.PreventDefault() }))

	if s.Dispatch(NewEvent("submit", nil)) {
		t.Errorf("Expected Dispatch to report a prevented default")
	}
	if !s.Dispatch(NewEvent("reset", nil)) {
		t.Errorf("Expected Dispatch without listeners to report true")
	}
}

// target is a minimal in-memory Target.
type target struct {
	ListenerSet
}

func (t *target) DispatchEvent(ev *Event) bool { return t.Dispatch(ev) }
func (t *target) AddEventListener(typ string, l *Listener) { t.Add(typ, l) }
func (t *target) RemoveEventListener(typ string, l *Listener) { t.Remove(typ, l) }

func TestChannel_Rebind(t *testing.T) {
	var ch Channel
	a, b := &target{}, &target{}
	var got []string
	l := NewListener(func(ev *Event) { got = append(got, ev.Detail.(string)) })

	ch.AddEventListener("change", l) // unbound: dropped
	ch.Bind(a)
	ch.AddEventListener("change", l)
	ch.Dispatch(NewEvent("change", "a"))

	ch.Bind(b)
	ch.Dispatch(NewEvent("change", "b")) // no listener on b yet
	a.DispatchEvent(NewEvent("change", "a-direct"))

	if diff := cmp.Diff([]string{"a", "a-direct"}, got); diff != "" {
		t.Errorf("Delivered events mismatch (-want +got):\n%s", diff)
	}

	ch.Bind(nil)
	if ch.Bound() {
		t.Errorf("Expected Bind(nil) to unbind the channel")
	}
}

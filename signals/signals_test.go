package signals

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestSignal_SetNotifiesEveryTime verifies subscribers run on each Set, in
// order, including when the value does not change.
func TestSignal_SetNotifiesEveryTime(t *testing.T) {
	// Arrange
	s := NewSignal[any](1)
	var calls []string
	s.Subscribe(func() { calls = append(calls, "a") })
	s.Subscribe(func() { calls = append(calls, "b") })

	// Act
	s.Set(1)
	s.Set(2)

	// Assert
	if diff := cmp.Diff([]string{"a", "b", "a", "b"}, calls); diff != "" {
		t.Errorf("Notification mismatch (-want +got):\n%s", diff)
	}
	if got := s.Get(); got != 2 {
		t.Errorf("Expected value 2, got %v", got)
	}
}

// TestSignal_Unsubscribe verifies removing one subscriber keeps the others,
// whatever the removal order.
func TestSignal_Unsubscribe(t *testing.T) {
	s := NewSignal(0)
	var calls []int
	unsubA := s.Subscribe(func() { calls = append(calls, 1) })
	unsubB := s.Subscribe(func() { calls = append(calls, 2) })
	s.Subscribe(func() { calls = append(calls, 3) })

	unsubA()
	unsubB()
	unsubA()
	s.Set(1)

	if diff := cmp.Diff([]int{3}, calls); diff != "" {
		t.Errorf("Expected only the remaining subscriber (-want +got):\n%s", diff)
	}
}

// TestSignal_NestedSet verifies a subscriber may set the signal again; the
// nested notification runs to completion first.
func TestSignal_NestedSet(t *testing.T) {
	s := NewSignal(0)
	var seen []int
	s.Subscribe(func() {
		v := s.Get()
		if v == 1 {
			s.Set(2)
		}
		seen = append(seen, v)
	})

	s.Set(1)

	if diff := cmp.Diff([]int{2, 1}, seen); diff != "" {
		t.Errorf("Nested order mismatch (-want +got):\n%s", diff)
	}
}

//go:build !wasm

package appcomponents

import (
	"testing"

	"github.com/vcrobe/nojs-wc/events"
	"github.com/vcrobe/nojs-wc/testcomponents"
)

// TestCounter_InitialRender verifies the label and start properties end up in
// the rendered value.
func TestCounter_InitialRender(t *testing.T) {
	// Arrange
	counter := &Counter{}
	renderer := testcomponents.NewTestRenderer(counter)

	// Act: the start attribute arrives as a string
	vnode := renderer.RenderRoot(map[string]any{"label": "Clicks", "start": "5"})

	// Assert
	if vnode.Tag != "div" {
		t.Errorf("Expected root tag 'div', got '%s'", vnode.Tag)
	}
	if len(vnode.Children) != 2 {
		t.Fatalf("Expected 2 children (value and button), got %d", len(vnode.Children))
	}
	if got := vnode.Children[0].Content; got != "Clicks: 5" {
		t.Errorf("Expected content 'Clicks: 5', got '%s'", got)
	}
}

// TestCounter_StartOnlyOnce verifies later start values do not reset the count.
func TestCounter_StartOnlyOnce(t *testing.T) {
	counter := &Counter{}
	renderer := testcomponents.NewTestRenderer(counter)

	renderer.RenderRoot(map[string]any{"start": "not a number"})
	renderer.RenderRoot(map[string]any{"start": 2})
	vnode := renderer.RenderRoot(map[string]any{"start": 9})

	if got := vnode.Children[0].Content; got != "Count: 2" {
		t.Errorf("Expected content 'Count: 2', got '%s'", got)
	}
}

// TestCounter_ClickUpdatesState verifies the button handler increments and
// re-renders through StateHasChanged.
func TestCounter_ClickUpdatesState(t *testing.T) {
	// Arrange
	counter := &Counter{}
	renderer := testcomponents.NewTestRenderer(counter)
	vnode := renderer.RenderRoot(nil)

	// Act
	click := vnode.Children[1].Handlers["click"]
	if click == nil {
		t.Fatalf("Expected a click handler on the button")
	}
	click(events.NewEvent("click", nil))
	click(events.NewEvent("click", nil))

	// Assert
	if renderer.Renders() != 3 {
		t.Errorf("Expected 3 renders, got %d", renderer.Renders())
	}
	if got := renderer.CurrentVDOM().Children[0].Content; got != "Count: 2" {
		t.Errorf("Expected content 'Count: 2', got '%s'", got)
	}
}

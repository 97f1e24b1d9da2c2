package appcomponents

import (
	"fmt"
	"strconv"

	"github.com/vcrobe/nojs-wc/element"
	"github.com/vcrobe/nojs-wc/events"
	"github.com/vcrobe/nojs-wc/runtime"
	"github.com/vcrobe/nojs-wc/vdom"
)

// Counter counts clicks. It takes its properties through SetProperties: the
// start attribute arrives as a string, the start property may be an int.
// Only the first usable start value counts.
type Counter struct {
	runtime.ComponentBase

	Label string
	Count int

	started bool
}

// PropTypes implements element.Declarer.
func (c *Counter) PropTypes() element.PropTypes {
	return element.PropTypes{
		"label": {Kind: "string"},
		"start": {Kind: "int"},
	}
}

// SetProperties implements runtime.PropertySetter.
func (c *Counter) SetProperties(props map[string]any) {
	if label, ok := props["label"].(string); ok {
		c.Label = label
	}
	if c.started {
		return
	}
	switch start := props["start"].(type) {
	case int:
		c.Count = start
		c.started = true
	case string:
		if n, err := strconv.Atoi(start); err == nil {
			c.Count = n
			c.started = true
		}
	}
}

// Increment bumps the count and re-renders.
func (c *Counter) Increment() {
	c.Count++
	c.StateHasChanged()
}

func (c *Counter) Render(r runtime.Renderer) *vdom.VNode {
	label := c.Label
	if label == "" {
		label = "Count"
	}
	return vdom.Div(map[string]any{"class": "counter"},
		vdom.Span(fmt.Sprintf("%s: %d", label, c.Count), map[string]any{"class": "value"}),
		vdom.Button("+1", map[string]any{
			"onClick": func(ev *events.Event) { c.Increment() },
		}),
	)
}
